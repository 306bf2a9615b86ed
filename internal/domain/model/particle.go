package model

import "time"

// Particle is one falling heart. Attributes are fixed at emission.
type Particle struct {
	ID                  string
	HorizontalPosition  float64 // Percent of width, [0,100).
	FallDurationSeconds float64 // [4,7).
	StartDelaySeconds   float64 // [0,1).
	EmittedAt           time.Time
}

// Lifetime is how long the particle stays in the live-set: its start delay
// plus its fall duration.
func (p Particle) Lifetime() time.Duration {
	return time.Duration((p.FallDurationSeconds + p.StartDelaySeconds) * float64(time.Second))
}

// ExpiresAt returns the instant the particle leaves the live-set.
func (p Particle) ExpiresAt() time.Time {
	return p.EmittedAt.Add(p.Lifetime())
}
