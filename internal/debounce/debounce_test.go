package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// manual clock: timers fire only when the test says so
type manualTimer struct {
	f       func()
	stopped bool
}

func (m *manualTimer) Stop() bool {
	was := m.stopped
	m.stopped = true
	return !was
}

func withManualClock(t *Timer) *[]*manualTimer {
	var timers []*manualTimer
	t.newTimer = func(_ time.Duration, f func()) stopper {
		mt := &manualTimer{f: f}
		timers = append(timers, mt)
		return mt
	}
	return &timers
}

func (m *manualTimer) fire() {
	if !m.stopped {
		m.f()
	}
}

func TestSingleFireAfterQuiet(t *testing.T) {
	var fired atomic.Int32
	tm := New(time.Second, func() { fired.Add(1) })
	timers := withManualClock(tm)

	tm.Reset()
	(*timers)[0].fire()
	assert.Equal(t, int32(1), fired.Load())

	// expired timer firing again must not re-invoke
	(*timers)[0].fire()
	assert.Equal(t, int32(1), fired.Load())
}

func TestResetSupersedesPrevious(t *testing.T) {
	var fired atomic.Int32
	tm := New(time.Second, func() { fired.Add(1) })
	timers := withManualClock(tm)

	tm.Reset()
	tm.Reset()
	tm.Reset()

	// even if every underlying timer expires, only the latest counts
	for _, mt := range *timers {
		mt.stopped = false
		mt.f()
	}
	assert.Equal(t, int32(1), fired.Load())
}

func TestCancelDiscardsPendingFire(t *testing.T) {
	var fired atomic.Int32
	tm := New(time.Second, func() { fired.Add(1) })
	timers := withManualClock(tm)

	tm.Reset()
	tm.Cancel()
	(*timers)[0].stopped = false
	(*timers)[0].f()
	assert.Equal(t, int32(0), fired.Load())
}

func TestRealClock(t *testing.T) {
	done := make(chan struct{})
	tm := New(5*time.Millisecond, func() { close(done) })
	tm.Reset()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
}
