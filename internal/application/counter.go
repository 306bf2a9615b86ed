// Package application contains the timer-driven widgets and the scene that
// composes them for one mount of the page.
package application

import (
	"sync"
	"time"

	"github.com/ericfisherdev/heartpage/internal/domain/model"
	"github.com/ericfisherdev/heartpage/internal/domain/port/driven"
)

// CounterTickInterval is how often the elapsed counter recomputes.
const CounterTickInterval = time.Second

// ElapsedTimeCounter redisplays the duration since a fixed reference instant
// once per tick. Every tick recomputes from the clock's current time, so
// scheduling jitter never accumulates.
type ElapsedTimeCounter struct {
	mu        sync.Mutex
	clock     driven.Clock
	reference model.ReferenceInstant
	onUpdate  func(model.ElapsedDuration)
	current   model.ElapsedDuration
	ticks     int
	ticker    *interval
	state     lifecycle
}

// NewElapsedTimeCounter creates an unmounted counter. onUpdate receives every
// recomputed value while the counter is mounted; it is called with the
// counter's lock held and must not block or call back into the counter.
// onUpdate may be nil.
func NewElapsedTimeCounter(reference model.ReferenceInstant, clock driven.Clock, onUpdate func(model.ElapsedDuration)) *ElapsedTimeCounter {
	return &ElapsedTimeCounter{
		clock:     clock,
		reference: reference,
		onUpdate:  onUpdate,
	}
}

// Mount computes the current value immediately and starts the tick timer.
func (c *ElapsedTimeCounter) Mount() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.state.mountErr(); err != nil {
		return err
	}
	c.state = stateMounted

	c.refreshLocked()
	c.ticker = startInterval(c.clock, CounterTickInterval, c.tick)
	return nil
}

// Teardown cancels the tick timer. After it returns the counter never updates
// or calls onUpdate again. Calling it more than once, or before Mount, is safe.
func (c *ElapsedTimeCounter) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateMounted {
		c.ticker.stop()
	}
	c.state = stateTornDown
}

// Current returns the most recently displayed value.
func (c *ElapsedTimeCounter) Current() model.ElapsedDuration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Ticks returns how many times the value has been recomputed.
func (c *ElapsedTimeCounter) Ticks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Reference returns the instant the counter measures from.
func (c *ElapsedTimeCounter) Reference() model.ReferenceInstant {
	return c.reference
}

func (c *ElapsedTimeCounter) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != stateMounted {
		return
	}
	c.refreshLocked()
}

func (c *ElapsedTimeCounter) refreshLocked() {
	c.current = model.Decompose(c.reference, c.clock.Now())
	c.ticks++
	if c.onUpdate != nil {
		c.onUpdate(c.current)
	}
}
