// Package session implements the editor session controller: it owns the
// authoritative document text, loads it once, keeps it in step with the
// editor surface through debounced change and paste streams, and reports its
// encoded size.
//
// A Controller runs on the Bubble Tea event loop. Its methods return commands
// for the loop to execute, and every message those commands produce must be
// routed back through Update.
package session
