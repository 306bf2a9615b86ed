package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC)

func TestManual_FiresInDueOrder(t *testing.T) {
	c := NewManual(epoch)
	var order []string
	var firedAt []time.Duration

	record := func(name string) func() {
		return func() {
			order = append(order, name)
			firedAt = append(firedAt, c.Now().Sub(epoch))
		}
	}

	c.AfterFunc(300*time.Millisecond, record("c"))
	c.AfterFunc(100*time.Millisecond, record("a"))
	c.AfterFunc(200*time.Millisecond, record("b"))
	c.AfterFunc(200*time.Millisecond, record("b2"))

	c.Advance(250 * time.Millisecond)

	assert.Equal(t, []string{"a", "b", "b2"}, order)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 200 * time.Millisecond}, firedAt)
	assert.Equal(t, epoch.Add(250*time.Millisecond), c.Now())
	assert.Equal(t, 1, c.Pending())
}

func TestManual_StopPreventsFire(t *testing.T) {
	c := NewManual(epoch)
	fired := false

	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestManual_StopAfterFire(t *testing.T) {
	c := NewManual(epoch)
	timer := c.AfterFunc(time.Second, func() {})

	c.Advance(time.Second)

	assert.False(t, timer.Stop())
}

func TestManual_CallbackSchedulesWithinWindow(t *testing.T) {
	c := NewManual(epoch)
	var ticks []time.Duration

	var tick func()
	tick = func() {
		ticks = append(ticks, c.Now().Sub(epoch))
		c.AfterFunc(time.Second, tick)
	}
	c.AfterFunc(time.Second, tick)

	c.Advance(3500 * time.Millisecond)

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, ticks)
	assert.Equal(t, 1, c.Pending())
}

func TestManual_SetBackwardsDoesNotFire(t *testing.T) {
	c := NewManual(epoch)
	fired := false
	c.AfterFunc(time.Second, func() { fired = true })

	c.Set(epoch.Add(-time.Hour))

	assert.False(t, fired)
	assert.Equal(t, epoch.Add(-time.Hour), c.Now())
}
