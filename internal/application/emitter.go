package application

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/ericfisherdev/heartpage/internal/domain/model"
	"github.com/ericfisherdev/heartpage/internal/domain/port/driven"
)

// Particle emission parameters.
const (
	EmitInterval = 600 * time.Millisecond

	minFallSeconds    = 4.0
	fallSpreadSeconds = 3.0
	maxDelaySeconds   = 1.0
	positionRange     = 100.0
)

// ParticleObserver is notified when particles enter and leave the live-set.
// Calls are made with the emitter's lock held; implementations must not block
// or call back into the emitter.
type ParticleObserver interface {
	ParticleEmitted(p model.Particle)
	ParticleRemoved(id string)
}

type liveParticle struct {
	particle model.Particle
	removal  driven.Timer
}

// ParticleEmitter spawns a falling particle every EmitInterval and removes
// each one when its own lifetime ends. The number of live particles is not
// capped.
type ParticleEmitter struct {
	mu       sync.Mutex
	clock    driven.Clock
	rng      driven.RandomSource
	ids      driven.IDSource
	observer ParticleObserver
	live     map[string]liveParticle
	emitted  int
	ticker   *interval
	state    lifecycle
}

// NewParticleEmitter creates an unmounted emitter. observer may be nil.
func NewParticleEmitter(clock driven.Clock, rng driven.RandomSource, ids driven.IDSource, observer ParticleObserver) *ParticleEmitter {
	return &ParticleEmitter{
		clock:    clock,
		rng:      rng,
		ids:      ids,
		observer: observer,
		live:     make(map[string]liveParticle),
	}
}

// Mount starts the emission timer. The first particle appears one
// EmitInterval after mounting.
func (e *ParticleEmitter) Mount() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.state.mountErr(); err != nil {
		return err
	}
	e.state = stateMounted
	e.ticker = startInterval(e.clock, EmitInterval, e.emit)
	return nil
}

// Teardown cancels the emission timer and every pending removal. Particles
// still live are left in place and no observer call happens afterwards.
func (e *ParticleEmitter) Teardown() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == stateMounted {
		e.ticker.stop()
		for _, lp := range e.live {
			lp.removal.Stop()
		}
	}
	e.state = stateTornDown
}

// Live returns the live-set ordered by emission time.
func (e *ParticleEmitter) Live() []model.Particle {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]model.Particle, 0, len(e.live))
	for _, lp := range e.live {
		out = append(out, lp.particle)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmittedAt.Equal(out[j].EmittedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].EmittedAt.Before(out[j].EmittedAt)
	})
	return out
}

// Emitted returns the number of particles emitted since Mount.
func (e *ParticleEmitter) Emitted() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.emitted
}

func (e *ParticleEmitter) emit() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateMounted {
		return
	}

	p := model.Particle{
		ID:                  e.nextIDLocked(),
		HorizontalPosition:  e.rng.Float64() * positionRange,
		FallDurationSeconds: minFallSeconds + e.rng.Float64()*fallSpreadSeconds,
		StartDelaySeconds:   e.rng.Float64() * maxDelaySeconds,
		EmittedAt:           e.clock.Now(),
	}

	id := p.ID
	e.live[id] = liveParticle{
		particle: p,
		removal:  e.clock.AfterFunc(p.Lifetime(), func() { e.remove(id) }),
	}
	e.emitted++

	if e.observer != nil {
		e.observer.ParticleEmitted(p)
	}
}

// nextIDLocked returns an identity not shared with any live particle.
func (e *ParticleEmitter) nextIDLocked() string {
	base := e.ids.NewID()
	id := base
	for n := 1; ; n++ {
		if _, taken := e.live[id]; !taken {
			return id
		}
		id = base + "-" + strconv.Itoa(n)
	}
}

func (e *ParticleEmitter) remove(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateMounted {
		return
	}
	if _, ok := e.live[id]; !ok {
		return
	}
	delete(e.live, id)

	if e.observer != nil {
		e.observer.ParticleRemoved(id)
	}
}
