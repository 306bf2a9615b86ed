package clock

import (
	"sync"
	"time"

	"github.com/ericfisherdev/heartpage/internal/domain/port/driven"
)

// Manual is a Clock whose time only moves when Advance or Set is called.
// Scheduled callbacks run synchronously inside Advance, one at a time, with
// Now reporting the callback's due time while it runs.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

// Compile-time interface satisfaction check.
var _ driven.Clock = (*Manual)(nil)

type manualTimer struct {
	clock *Manual
	due   time.Time
	seq   uint64
	fn    func()
	done  bool
}

// NewManual creates a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the simulated time.
func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules f to run once the simulated time reaches Now()+d.
func (c *Manual) AfterFunc(d time.Duration, f func()) driven.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &manualTimer{clock: c, due: c.now.Add(d), seq: c.seq, fn: f}
	c.pending = append(c.pending, t)
	return t
}

// Stop removes the timer from the schedule.
func (t *manualTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	c.removeLocked(t)
	return true
}

// Advance moves the clock forward by d, firing every callback that falls due
// on the way in due-time order. Callbacks scheduled while advancing fire too
// if they fall inside the window.
func (c *Manual) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	c.advanceTo(target)
}

// Set moves the clock to t, firing due callbacks as Advance does. Moving
// backwards only changes Now.
func (c *Manual) Set(t time.Time) {
	c.advanceTo(t)
}

// Pending returns the number of scheduled callbacks that have not run.
func (c *Manual) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Manual) advanceTo(target time.Time) {
	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		next.done = true
		c.removeLocked(next)
		if next.due.After(c.now) {
			c.now = next.due
		}
		fn := next.fn
		c.mu.Unlock()

		fn()
	}
}

// nextDueLocked returns the earliest pending timer due at or before target.
func (c *Manual) nextDueLocked(target time.Time) *manualTimer {
	var next *manualTimer
	for _, t := range c.pending {
		if t.due.After(target) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (c *Manual) removeLocked(t *manualTimer) {
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}
