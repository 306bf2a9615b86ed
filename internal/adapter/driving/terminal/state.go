package terminal

import (
	"sync"

	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

// sceneState mirrors the widgets' display state for the render loop.
type sceneState struct {
	mu      sync.Mutex
	elapsed model.ElapsedDuration
	hearts  map[string]model.Particle
}

func newSceneState() *sceneState {
	return &sceneState{hearts: make(map[string]model.Particle)}
}

func (s *sceneState) ElapsedChanged(d model.ElapsedDuration) {
	s.mu.Lock()
	s.elapsed = d
	s.mu.Unlock()
}

func (s *sceneState) ParticleEmitted(p model.Particle) {
	s.mu.Lock()
	s.hearts[p.ID] = p
	s.mu.Unlock()
}

func (s *sceneState) ParticleRemoved(id string) {
	s.mu.Lock()
	delete(s.hearts, id)
	s.mu.Unlock()
}

// snapshot copies the state so drawing happens without the lock.
func (s *sceneState) snapshot() (model.ElapsedDuration, []model.Particle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hearts := make([]model.Particle, 0, len(s.hearts))
	for _, p := range s.hearts {
		hearts = append(hearts, p)
	}
	return s.elapsed, hearts
}
