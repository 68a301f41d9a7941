// Package debounce provides the quiet-period timer that turns a stream of
// partial recognition results into a single route-and-respond firing.
package debounce

import (
	"sync"
	"time"
)

// Timer fires fn once after a quiet period of d. Reset restarts the wait;
// Cancel stops it. A fire consumes the timer until the next Reset, so one
// burst of events yields at most one invocation of fn.
type Timer struct {
	d  time.Duration
	fn func()

	// newTimer lets tests substitute the clock
	newTimer func(d time.Duration, f func()) stopper

	mu  sync.Mutex
	gen int
	t   stopper
}

type stopper interface{ Stop() bool }

func New(d time.Duration, fn func()) *Timer {
	return &Timer{
		d:  d,
		fn: fn,
		newTimer: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// Reset (re)arms the timer. Called on every partial result.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.t != nil {
		t.t.Stop()
	}
	t.gen++
	gen := t.gen
	t.t = t.newTimer(t.d, func() { t.fire(gen) })
}

// Cancel disarms the timer; a pending fire is discarded even if the
// underlying timer already expired.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
	t.gen++
}

func (t *Timer) fire(gen int) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	// consume the armed generation so this fire happens exactly once
	t.gen++
	t.t = nil
	t.mu.Unlock()
	t.fn()
}
