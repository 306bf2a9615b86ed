package terminal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/heartpage/internal/adapter/driven/clock"
	"github.com/ericfisherdev/heartpage/internal/adapter/driven/random"
	"github.com/ericfisherdev/heartpage/internal/application"
	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestRenderer(t *testing.T, screen tcell.Screen, clk *clock.Manual) *Renderer {
	t.Helper()
	labels, err := model.LabelsFor(model.LocalePortuguese)
	require.NoError(t, err)

	reference := model.ReferenceAt(t0.AddDate(0, -3, 0))
	scenes := application.NewSceneService(reference, clk, random.NewSeeded(7), random.UUIDs{})

	return NewRenderer(screen, scenes, clk, labels, CardOptions{
		Title:   "Nosso primeiro dia dos namorados",
		TrackID: "3g5FrnRdbmDQyWNiDIprts",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func rowText(screen tcell.Screen, y, cols int) string {
	var out []rune
	for x := 0; x < cols; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		out = append(out, ch)
	}
	return string(out)
}

func TestRenderer_DrawsHeartsAndCard(t *testing.T) {
	screen := newTestScreen(t)
	clk := clock.NewManual(t0.Add(2500 * time.Millisecond))
	r := newTestRenderer(t, screen, clk)

	state := newSceneState()
	state.ElapsedChanged(model.ElapsedDuration{Months: 3, Days: 1, Hours: 2, Minutes: 0, Seconds: 59})
	state.ParticleEmitted(model.Particle{
		ID:                  "heart-1",
		HorizontalPosition:  5,
		FallDurationSeconds: 5,
		EmittedAt:           t0,
	})

	r.draw(state)

	// 2.5s into a 5s fall on 24 rows: floor(-1 + 0.5*25) = 11.
	ch, _, _, _ := screen.GetContent(4, 11)
	assert.Equal(t, heartRune, ch)

	var screenText string
	for y := 0; y < 24; y++ {
		screenText += rowText(screen, y, 80) + "\n"
	}
	assert.Contains(t, screenText, "Nosso primeiro dia dos namorados")
	assert.Contains(t, screenText, "open.spotify.com/track/3g5FrnRdbmDQyWNiDIprts")
	assert.Contains(t, screenText, "3 meses")
	assert.Contains(t, screenText, "1 dia")
	assert.Contains(t, screenText, "2 horas")
	assert.Contains(t, screenText, "0 minutos")
	assert.Contains(t, screenText, "59 segundos")
}

func TestRenderer_RemovedHeartIsNotDrawn(t *testing.T) {
	screen := newTestScreen(t)
	clk := clock.NewManual(t0.Add(2500 * time.Millisecond))
	r := newTestRenderer(t, screen, clk)

	state := newSceneState()
	state.ParticleEmitted(model.Particle{ID: "heart-1", HorizontalPosition: 5, FallDurationSeconds: 5, EmittedAt: t0})
	state.ParticleRemoved("heart-1")

	r.draw(state)

	ch, _, _, _ := screen.GetContent(4, 11)
	assert.NotEqual(t, heartRune, ch)
}

func TestRenderer_HandleEvent(t *testing.T) {
	screen := newTestScreen(t)
	r := newTestRenderer(t, screen, clock.NewManual(t0))

	assert.True(t, r.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, r.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, r.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, r.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, r.handleEvent(tcell.NewEventResize(100, 30)))
}

func TestRenderer_RunQuitsOnKeyAndTearsDown(t *testing.T) {
	screen := newTestScreen(t)
	clk := clock.NewManual(t0)
	r := newTestRenderer(t, screen, clk)

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	// Counter tick and emitter tick are armed once the scene is mounted.
	require.Eventually(t, func() bool { return clk.Pending() == 2 }, time.Second, 5*time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
	assert.Equal(t, 0, clk.Pending())
}

func TestRenderer_RunStopsOnContextCancel(t *testing.T) {
	screen := newTestScreen(t)
	clk := clock.NewManual(t0)
	r := newTestRenderer(t, screen, clk)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return clk.Pending() == 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 0, clk.Pending())
}
