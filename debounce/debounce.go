package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the quiet interval used when none is configured.
const DefaultInterval = 300 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// CommitMsg is delivered when a countdown elapses.
type CommitMsg struct {
	ID  int
	tag int
}

// Synchronizer holds at most one pending value and commits it once no new
// value has been submitted for a full interval.
type Synchronizer[T any] struct {
	id       int
	interval time.Duration
	apply    func(T) tea.Cmd

	tag     int
	pending T
	has     bool
	stopped bool
}

// New returns a Synchronizer that calls apply with the last submitted value of
// each burst. A non-positive interval selects DefaultInterval.
func New[T any](interval time.Duration, apply func(T) tea.Cmd) *Synchronizer[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Synchronizer[T]{
		id:       nextID(),
		interval: interval,
		apply:    apply,
	}
}

func (s *Synchronizer[T]) ID() int { return s.id }

func (s *Synchronizer[T]) Interval() time.Duration { return s.interval }

// Submit replaces the pending value and restarts the countdown.
func (s *Synchronizer[T]) Submit(v T) tea.Cmd {
	if s.stopped {
		return nil
	}
	s.tag++
	s.pending = v
	s.has = true

	id, tag := s.id, s.tag
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return CommitMsg{ID: id, tag: tag}
	})
}

// Update commits the pending value when msg is the countdown of the latest
// Submit. Any other message yields nil.
func (s *Synchronizer[T]) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(CommitMsg)
	if !ok || m.ID != s.id {
		return nil
	}
	if s.stopped || !s.has || m.tag != s.tag {
		return nil
	}

	v := s.pending
	var zero T
	s.pending, s.has = zero, false
	if s.apply == nil {
		return nil
	}
	return s.apply(v)
}

// Pending returns the value waiting for its countdown, if any.
func (s *Synchronizer[T]) Pending() (T, bool) {
	return s.pending, s.has
}

// Stop drops the pending value. Countdowns still in flight become no-ops and
// later Submit calls are ignored.
func (s *Synchronizer[T]) Stop() {
	var zero T
	s.pending, s.has = zero, false
	s.stopped = true
}

func (s *Synchronizer[T]) Stopped() bool { return s.stopped }
