package debounce

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder[T any] struct {
	values []T
	at     []time.Time
}

func (r *recorder[T]) apply(v T) tea.Cmd {
	r.values = append(r.values, v)
	r.at = append(r.at, time.Now())
	return nil
}

func TestSynchronizer_CoalescesBurstToLastValue(t *testing.T) {
	rec := &recorder[int]{}
	s := New(5*time.Millisecond, rec.apply)

	var cmds []tea.Cmd
	for i := 1; i <= 5; i++ {
		cmd := s.Submit(i)
		require.NotNil(t, cmd)
		cmds = append(cmds, cmd)
	}

	pending, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, 5, pending)

	for _, cmd := range cmds {
		assert.Nil(t, s.Update(cmd()))
	}

	assert.Equal(t, []int{5}, rec.values)
	_, ok = s.Pending()
	assert.False(t, ok, "pending slot must be cleared after commit")
}

func TestSynchronizer_CommitDeliveredTwiceAppliesOnce(t *testing.T) {
	rec := &recorder[string]{}
	s := New(time.Millisecond, rec.apply)

	msg := s.Submit("x")()
	s.Update(msg)
	s.Update(msg)

	assert.Equal(t, []string{"x"}, rec.values)
}

func TestSynchronizer_LateSubmissionRestartsCountdown(t *testing.T) {
	const interval = 40 * time.Millisecond

	rec := &recorder[string]{}
	s := New(interval, rec.apply)

	start := time.Now()
	first := s.Submit("first")
	time.Sleep(interval / 2)
	second := s.Submit("second")

	msgs := make(chan tea.Msg, 2)
	go func() { msgs <- first() }()
	go func() { msgs <- second() }()
	for i := 0; i < 2; i++ {
		s.Update(<-msgs)
	}

	require.Equal(t, []string{"second"}, rec.values)
	assert.GreaterOrEqual(t, rec.at[0].Sub(start), interval+interval/2)
}

func TestSynchronizer_StopCancelsPendingCommit(t *testing.T) {
	rec := &recorder[int]{}
	s := New(time.Millisecond, rec.apply)

	cmd := s.Submit(1)
	s.Stop()

	assert.Nil(t, s.Update(cmd()))
	assert.Empty(t, rec.values)
	assert.True(t, s.Stopped())
	assert.Nil(t, s.Submit(2), "submit after stop must not schedule a countdown")

	_, ok := s.Pending()
	assert.False(t, ok)
}

func TestSynchronizer_InstancesAreIndependent(t *testing.T) {
	recA := &recorder[int]{}
	recB := &recorder[int]{}
	a := New(time.Millisecond, recA.apply)
	b := New(time.Millisecond, recB.apply)
	require.NotEqual(t, a.ID(), b.ID())

	msgA := a.Submit(1)()
	msgB := b.Submit(2)()

	assert.Nil(t, b.Update(msgA))
	assert.Empty(t, recB.values)

	a.Update(msgA)
	b.Update(msgB)
	assert.Equal(t, []int{1}, recA.values)
	assert.Equal(t, []int{2}, recB.values)
}

func TestSynchronizer_ReturnsApplyCommand(t *testing.T) {
	type done struct{}
	s := New(time.Millisecond, func(int) tea.Cmd {
		return func() tea.Msg { return done{} }
	})

	cmd := s.Update(s.Submit(7)())
	require.NotNil(t, cmd)
	assert.Equal(t, done{}, cmd())
}

func TestNew_DefaultsInterval(t *testing.T) {
	s := New[int](0, nil)
	assert.Equal(t, DefaultInterval, s.Interval())
	assert.Nil(t, s.Update(tea.KeyMsg{}))
}
