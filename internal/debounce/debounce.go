// Package debounce coalesces bursts of events, such as the several write notifications an
// editor produces when saving a file, into a single callback.
package debounce

import (
	"sync"
	"time"
)

const DefaultDuration = 250 * time.Millisecond

// Debouncer runs only the most recently triggered callback once the duration has passed
// without another trigger.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

// New creates a Debouncer. A zero duration uses DefaultDuration.
func New(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDuration
	}

	return &Debouncer{duration: duration}
}

// Trigger schedules callback, replacing anything still waiting to run.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, func() {
		if !d.claim(seq) {
			return
		}

		callback()
	})
}

// claim reports whether seq is still current. Stop returns false once a timer has fired, so an
// old callback can already be running when a new one is scheduled.
func (d *Debouncer) claim(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if seq != d.seq {
		return false
	}

	d.timer = nil

	return true
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
