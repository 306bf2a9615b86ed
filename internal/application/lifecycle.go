package application

import (
	"errors"
	"sync"
	"time"

	"github.com/ericfisherdev/heartpage/internal/domain/port/driven"
)

var (
	// ErrAlreadyMounted is returned when Mount is called on a mounted widget.
	ErrAlreadyMounted = errors.New("widget already mounted")
	// ErrTornDown is returned when Mount is called after Teardown.
	ErrTornDown = errors.New("widget torn down")
)

// lifecycle is the mount state shared by the timer-driven widgets.
type lifecycle int

const (
	stateIdle lifecycle = iota
	stateMounted
	stateTornDown
)

// mountErr returns the error for mounting from state s.
func (s lifecycle) mountErr() error {
	switch s {
	case stateMounted:
		return ErrAlreadyMounted
	case stateTornDown:
		return ErrTornDown
	default:
		return nil
	}
}

// interval re-arms a one-shot clock timer after every fire, giving a
// repeating callback with a single cancellation point.
type interval struct {
	mu      sync.Mutex
	clock   driven.Clock
	period  time.Duration
	fn      func()
	timer   driven.Timer
	stopped bool
}

// startInterval schedules fn every period, first after one period.
func startInterval(clock driven.Clock, period time.Duration, fn func()) *interval {
	iv := &interval{clock: clock, period: period, fn: fn}

	iv.mu.Lock()
	iv.timer = clock.AfterFunc(period, iv.fire)
	iv.mu.Unlock()

	return iv
}

func (iv *interval) fire() {
	iv.mu.Lock()
	if iv.stopped {
		iv.mu.Unlock()
		return
	}
	iv.timer = iv.clock.AfterFunc(iv.period, iv.fire)
	iv.mu.Unlock()

	iv.fn()
}

// stop cancels the pending fire. Safe to call more than once.
func (iv *interval) stop() {
	iv.mu.Lock()
	defer iv.mu.Unlock()

	if iv.stopped {
		return
	}
	iv.stopped = true
	if iv.timer != nil {
		iv.timer.Stop()
	}
}
