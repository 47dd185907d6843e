package widget

import (
	"sync"
	"time"
)

// Debouncer collapses rapid successive Schedule calls into a single
// invocation after a quiet period. At most one call is pending at a
// time; scheduling a new call discards the previous one entirely.
//
// Thread-safety: all methods are safe for concurrent use. The scheduled
// function runs on a timer goroutine.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	seq   uint64 // detects stale timer callbacks
}

// NewDebouncer creates a debouncer with the given delay. Negative delays
// behave as zero.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Schedule arranges for fn to run after the debounce delay, replacing
// any previously scheduled function. Only the last scheduled fn before
// a full quiet period runs.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	current := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A Stop can lose the race with the timer firing; the sequence
		// check catches that.
		if d.seq != current {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel discards any pending scheduled function.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

// Pending reports whether a scheduled function has not fired yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
