package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseReferenceInstant_CalendarForm(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	ref := ParseReferenceInstant("2024-09-07T00:00:00", loc)

	assert.True(t, ref.Valid())
	assert.Equal(t, "2024-09-07T00:00:00", ref.Raw())
	assert.Equal(t, time.Date(2024, 9, 7, 3, 0, 0, 0, time.UTC), ref.Time().UTC())
}

func TestParseReferenceInstant_RFC3339(t *testing.T) {
	ref := ParseReferenceInstant("2024-09-07T00:00:00Z", nil)

	assert.True(t, ref.Valid())
	assert.Equal(t, time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC), ref.Time().UTC())
}

func TestParseReferenceInstant_Invalid(t *testing.T) {
	for _, raw := range []string{"", "yesterday", "2024-13-01T00:00:00"} {
		ref := ParseReferenceInstant(raw, time.UTC)

		assert.False(t, ref.Valid(), raw)
		assert.True(t, ref.Time().IsZero(), raw)
	}
}

func TestParticle_Lifetime(t *testing.T) {
	emitted := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	p := Particle{FallDurationSeconds: 4.5, StartDelaySeconds: 0.25, EmittedAt: emitted}

	assert.Equal(t, 4750*time.Millisecond, p.Lifetime())
	assert.Equal(t, emitted.Add(4750*time.Millisecond), p.ExpiresAt())
}
