package application

import (
	"fmt"
	"sync"

	"github.com/ericfisherdev/heartpage/internal/domain/model"
	"github.com/ericfisherdev/heartpage/internal/domain/port/driven"
)

// SceneSink receives every widget update of one scene. Calls arrive from
// timer callbacks with a widget lock held; implementations must not block.
type SceneSink interface {
	ElapsedChanged(d model.ElapsedDuration)
	ParticleObserver
}

// Scene is one mount of the page: an elapsed counter and a particle emitter
// that share nothing but the sink they report to.
type Scene struct {
	counter  *ElapsedTimeCounter
	emitter  *ParticleEmitter
	teardown sync.Once
}

// Mount starts both widgets. If the emitter cannot start, the counter is torn
// down again.
func (s *Scene) Mount() error {
	if err := s.counter.Mount(); err != nil {
		return fmt.Errorf("mount elapsed counter: %w", err)
	}
	if err := s.emitter.Mount(); err != nil {
		s.counter.Teardown()
		return fmt.Errorf("mount particle emitter: %w", err)
	}
	return nil
}

// Teardown stops both widgets exactly once.
func (s *Scene) Teardown() {
	s.teardown.Do(func() {
		s.emitter.Teardown()
		s.counter.Teardown()
	})
}

// Counter returns the scene's elapsed counter.
func (s *Scene) Counter() *ElapsedTimeCounter { return s.counter }

// Emitter returns the scene's particle emitter.
func (s *Scene) Emitter() *ParticleEmitter { return s.emitter }

// SceneService creates scenes that share one reference instant and one set of
// clock, randomness and identity sources.
type SceneService struct {
	reference model.ReferenceInstant
	clock     driven.Clock
	rng       driven.RandomSource
	ids       driven.IDSource
}

// NewSceneService creates a SceneService with all required dependencies.
func NewSceneService(
	reference model.ReferenceInstant,
	clock driven.Clock,
	rng driven.RandomSource,
	ids driven.IDSource,
) *SceneService {
	return &SceneService{
		reference: reference,
		clock:     clock,
		rng:       rng,
		ids:       ids,
	}
}

// NewScene builds an unmounted scene reporting to sink.
func (s *SceneService) NewScene(sink SceneSink) *Scene {
	return &Scene{
		counter: NewElapsedTimeCounter(s.reference, s.clock, sink.ElapsedChanged),
		emitter: NewParticleEmitter(s.clock, s.rng, s.ids, sink),
	}
}

// Elapsed computes the elapsed duration at the clock's current time without
// mounting anything.
func (s *SceneService) Elapsed() model.ElapsedDuration {
	return model.Decompose(s.reference, s.clock.Now())
}

// Reference returns the configured reference instant.
func (s *SceneService) Reference() model.ReferenceInstant {
	return s.reference
}
