package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used when a caller passes a non-positive delay
const DefaultDelay = 200 * time.Millisecond

// Debouncer collapses bursts of calls into a single trailing call. Every call
// to Do replaces the pending function and restarts the timer, so only the
// last function scheduled within a quiet period runs.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// New creates a Debouncer with the given quiet period
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Do schedules fn, discarding any function still waiting to run
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Func wraps fn so that rapid calls collapse into one invocation carrying the
// arguments of the last call.
func Func[T any](delay time.Duration, fn func(T)) func(T) {
	d := New(delay)
	return func(arg T) {
		d.Do(func() { fn(arg) })
	}
}
