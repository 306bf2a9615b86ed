package model

import (
	"strings"
	"time"
)

// ReferenceLayout is the calendar form of a configured reference instant.
// It carries no zone; the instant is read in the location passed to
// ParseReferenceInstant.
const ReferenceLayout = "2006-01-02T15:04:05"

// ReferenceInstant is the fixed point in time the elapsed counter measures from.
// A zero or unparsable instant is not an error: it reports Valid() == false and
// decomposes to an all-zero ElapsedDuration.
type ReferenceInstant struct {
	raw   string
	at    time.Time
	valid bool
}

// ParseReferenceInstant parses raw as ReferenceLayout in loc, or as RFC 3339
// when it carries an explicit offset. A nil loc means host-local time.
func ParseReferenceInstant(raw string, loc *time.Location) ReferenceInstant {
	if loc == nil {
		loc = time.Local
	}

	trimmed := strings.TrimSpace(raw)
	ref := ReferenceInstant{raw: raw}

	if t, err := time.ParseInLocation(ReferenceLayout, trimmed, loc); err == nil {
		ref.at = t
		ref.valid = true
		return ref
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		ref.at = t
		ref.valid = true
	}

	return ref
}

// ReferenceAt wraps an already resolved instant.
func ReferenceAt(t time.Time) ReferenceInstant {
	return ReferenceInstant{raw: t.Format(time.RFC3339), at: t, valid: true}
}

// Raw returns the string the instant was parsed from.
func (r ReferenceInstant) Raw() string { return r.raw }

// Time returns the parsed instant; the zero time when invalid.
func (r ReferenceInstant) Time() time.Time { return r.at }

// Valid reports whether the configured string parsed.
func (r ReferenceInstant) Valid() bool { return r.valid }
