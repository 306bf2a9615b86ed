// Package clock implements the Clock port with the system clock and with a
// manually advanced clock for deterministic tests and previews.
package clock

import (
	"time"

	"github.com/ericfisherdev/heartpage/internal/domain/port/driven"
)

// System is the Clock backed by the time package.
type System struct{}

// Compile-time interface satisfaction check.
var _ driven.Clock = System{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// AfterFunc runs f on its own goroutine after d.
func (System) AfterFunc(d time.Duration, f func()) driven.Timer {
	return time.AfterFunc(d, f)
}
