package web

import (
	"encoding/json"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

// Stream event names as seen by heartpage.js.
const (
	eventElapsed         = "elapsed"
	eventParticle        = "particle"
	eventParticleRemoved = "particle-removed"
)

type streamEvent struct {
	name string
	data any
}

type elapsedPayload struct {
	Months  int64    `json:"months"`
	Days    int64    `json:"days"`
	Hours   int64    `json:"hours"`
	Minutes int64    `json:"minutes"`
	Seconds int64    `json:"seconds"`
	Lines   []string `json:"lines"`
}

type particlePayload struct {
	ID       string  `json:"id"`
	Left     float64 `json:"left"`
	Duration float64 `json:"duration"`
	Delay    float64 `json:"delay"`
}

type removedPayload struct {
	ID string `json:"id"`
}

// streamSink turns scene callbacks into queued stream events. It never blocks
// the timer callback: when the queue is full the event is dropped and counted.
type streamSink struct {
	labels  model.UnitLabels
	events  chan streamEvent
	dropped atomic.Int64
}

func newStreamSink(labels model.UnitLabels, buffer int) *streamSink {
	return &streamSink{
		labels: labels,
		events: make(chan streamEvent, buffer),
	}
}

func (s *streamSink) ElapsedChanged(d model.ElapsedDuration) {
	s.send(eventElapsed, elapsedPayload{
		Months:  d.Months,
		Days:    d.Days,
		Hours:   d.Hours,
		Minutes: d.Minutes,
		Seconds: d.Seconds,
		Lines:   d.Lines(s.labels),
	})
}

func (s *streamSink) ParticleEmitted(p model.Particle) {
	s.send(eventParticle, particlePayload{
		ID:       p.ID,
		Left:     p.HorizontalPosition,
		Duration: p.FallDurationSeconds,
		Delay:    p.StartDelaySeconds,
	})
}

func (s *streamSink) ParticleRemoved(id string) {
	s.send(eventParticleRemoved, removedPayload{ID: id})
}

func (s *streamSink) send(name string, data any) {
	select {
	case s.events <- streamEvent{name: name, data: data}:
	default:
		s.dropped.Add(1)
	}
}

// writeSSEEvent writes one Server-Sent Event frame.
func writeSSEEvent(w io.Writer, e streamEvent) error {
	data, err := json.Marshal(e.data)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.name, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.name, data)
	return err
}
