package application_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

var epoch = time.Date(2025, 6, 12, 20, 0, 0, 0, time.UTC)

// --- Fake implementations ---

// cycleRandom returns its values in order, wrapping around.
type cycleRandom struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func (r *cycleRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// sequentialIDs issues heart-1, heart-2, ...
type sequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (s *sequentialIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("heart-%d", s.n)
}

// constantID always returns the same token.
type constantID string

func (c constantID) NewID() string { return string(c) }

// recordingSink captures every widget notification.
type recordingSink struct {
	mu      sync.Mutex
	elapsed []model.ElapsedDuration
	emitted []model.Particle
	removed []string
}

func (s *recordingSink) ElapsedChanged(d model.ElapsedDuration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elapsed = append(s.elapsed, d)
}

func (s *recordingSink) ParticleEmitted(p model.Particle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emitted = append(s.emitted, p)
}

func (s *recordingSink) ParticleRemoved(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, id)
}

func (s *recordingSink) counts() (elapsed, emitted, removed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.elapsed), len(s.emitted), len(s.removed)
}

func liveIDs(particles []model.Particle) []string {
	ids := make([]string, 0, len(particles))
	for _, p := range particles {
		ids = append(ids, p.ID)
	}
	return ids
}
