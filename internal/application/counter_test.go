package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/heartpage/internal/adapter/driven/clock"
	"github.com/ericfisherdev/heartpage/internal/application"
	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

func newCounter(t *testing.T, offset time.Duration) (*application.ElapsedTimeCounter, *clock.Manual, *recordingSink) {
	t.Helper()
	clk := clock.NewManual(epoch)
	sink := &recordingSink{}
	ref := model.ReferenceAt(epoch.Add(-offset))
	return application.NewElapsedTimeCounter(ref, clk, sink.ElapsedChanged), clk, sink
}

func TestCounter_MountComputesImmediately(t *testing.T) {
	counter, _, sink := newCounter(t, 90*24*time.Hour)

	require.NoError(t, counter.Mount())
	defer counter.Teardown()

	want := model.ElapsedDuration{Months: 2, Days: 30}
	assert.Equal(t, want, counter.Current())
	require.Len(t, sink.elapsed, 1)
	assert.Equal(t, want, sink.elapsed[0])
}

func TestCounter_TicksEverySecond(t *testing.T) {
	counter, clk, sink := newCounter(t, 0)
	require.NoError(t, counter.Mount())
	defer counter.Teardown()

	clk.Advance(999 * time.Millisecond)
	assert.Equal(t, 1, counter.Ticks())

	clk.Advance(time.Millisecond)
	assert.Equal(t, 2, counter.Ticks())
	assert.Equal(t, int64(1), counter.Current().Seconds)

	clk.Advance(62 * time.Second)
	assert.Equal(t, 64, counter.Ticks())
	assert.Equal(t, model.ElapsedDuration{Minutes: 1, Seconds: 3}, counter.Current())
	assert.Len(t, sink.elapsed, 64)
}

// skewedClock reports wall-clock time shifted by skew while timers keep
// firing on the underlying schedule.
type skewedClock struct {
	*clock.Manual
	skew time.Duration
}

func (c *skewedClock) Now() time.Time { return c.Manual.Now().Add(c.skew) }

// TestCounter_RecomputesFromAbsoluteTime checks that a tick reads the clock
// rather than adding one second to the previous value.
func TestCounter_RecomputesFromAbsoluteTime(t *testing.T) {
	clk := &skewedClock{Manual: clock.NewManual(epoch)}
	counter := application.NewElapsedTimeCounter(model.ReferenceAt(epoch), clk, nil)
	require.NoError(t, counter.Mount())
	defer counter.Teardown()

	clk.Advance(time.Second)
	assert.Equal(t, model.ElapsedDuration{Seconds: 1}, counter.Current())

	clk.skew = 3 * time.Hour
	clk.Advance(time.Second)

	assert.Equal(t, 3, counter.Ticks())
	assert.Equal(t, model.ElapsedDuration{Hours: 3, Seconds: 2}, counter.Current())
}

func TestCounter_TeardownStopsTicks(t *testing.T) {
	counter, clk, sink := newCounter(t, 0)
	require.NoError(t, counter.Mount())

	clk.Advance(2 * time.Second)
	counter.Teardown()
	before := counter.Current()

	clk.Advance(time.Minute)

	assert.Equal(t, 3, counter.Ticks())
	assert.Equal(t, before, counter.Current())
	assert.Len(t, sink.elapsed, 3)
	assert.Equal(t, 0, clk.Pending())
}

func TestCounter_Lifecycle(t *testing.T) {
	counter, clk, _ := newCounter(t, 0)

	require.NoError(t, counter.Mount())
	assert.ErrorIs(t, counter.Mount(), application.ErrAlreadyMounted)
	assert.Equal(t, 1, clk.Pending())

	counter.Teardown()
	counter.Teardown()
	assert.ErrorIs(t, counter.Mount(), application.ErrTornDown)
	assert.Equal(t, 0, clk.Pending())
}

func TestCounter_TeardownBeforeMount(t *testing.T) {
	counter, clk, sink := newCounter(t, 0)

	counter.Teardown()

	assert.ErrorIs(t, counter.Mount(), application.ErrTornDown)
	assert.Equal(t, 0, clk.Pending())
	assert.Empty(t, sink.elapsed)
}

func TestCounter_InvalidReferenceDisplaysZero(t *testing.T) {
	clk := clock.NewManual(epoch)
	ref := model.ParseReferenceInstant("07/09/2024", time.UTC)
	counter := application.NewElapsedTimeCounter(ref, clk, nil)

	require.NoError(t, counter.Mount())
	defer counter.Teardown()
	clk.Advance(5 * time.Second)

	assert.True(t, counter.Current().IsZero())
	assert.Equal(t, 6, counter.Ticks())
}
