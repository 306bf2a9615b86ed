// Package random implements the RandomSource and IDSource ports.
package random

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/ericfisherdev/heartpage/internal/domain/port/driven"
)

// Source draws from math/rand/v2. The zero value uses the runtime's global
// generator; NewSeeded returns a reproducible stream.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Compile-time interface satisfaction checks.
var (
	_ driven.RandomSource = (*Source)(nil)
	_ driven.IDSource     = UUIDs{}
)

// NewSeeded creates a Source whose sequence is fixed by seed.
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0,1).
func (s *Source) Float64() float64 {
	if s.rng == nil {
		return rand.Float64()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// UUIDs issues random (version 4) UUID strings.
type UUIDs struct{}

// NewID returns a new UUID string.
func (UUIDs) NewID() string {
	return uuid.NewString()
}
