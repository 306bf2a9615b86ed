package driven

import "time"

// Timer is a cancellation handle for a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// Clock defines the driven port for the host's wall-clock and scheduler.
// Widgets read Now on every tick and schedule all waiting through AfterFunc,
// so tests can drive them with a simulated clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}
