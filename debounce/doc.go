// Package debounce coalesces bursts of events into single delayed commits.
//
// A Synchronizer is driven by the Bubble Tea event loop: Submit returns a
// tick command, and the resulting CommitMsg must be routed back through
// Update. Only the tick started by the most recent Submit commits; earlier
// ticks arrive stale and are dropped. All methods must be called from the
// event loop goroutine.
package debounce
