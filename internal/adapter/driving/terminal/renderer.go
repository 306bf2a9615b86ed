// Package terminal renders the greeting scene full-screen in a terminal with
// tcell: falling hearts behind a centred card holding the elapsed counter.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/ericfisherdev/heartpage/internal/application"
	"github.com/ericfisherdev/heartpage/internal/domain/model"
	"github.com/ericfisherdev/heartpage/internal/domain/port/driven"
)

const (
	frameInterval = 50 * time.Millisecond
	heartRune     = '♥'
)

var (
	cardStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	titleStyle = cardStyle.Foreground(tcell.ColorPlum).Bold(true)
)

// CardOptions holds the static card content.
type CardOptions struct {
	Title   string
	TrackID string
}

// Renderer owns the screen for the lifetime of Run.
type Renderer struct {
	screen tcell.Screen
	scenes *application.SceneService
	clock  driven.Clock
	labels model.UnitLabels
	card   CardOptions
	logger *slog.Logger
}

// NewRenderer creates a Renderer on an initialised screen.
func NewRenderer(
	screen tcell.Screen,
	scenes *application.SceneService,
	clock driven.Clock,
	labels model.UnitLabels,
	card CardOptions,
	logger *slog.Logger,
) *Renderer {
	return &Renderer{
		screen: screen,
		scenes: scenes,
		clock:  clock,
		labels: labels,
		card:   card,
		logger: logger,
	}
}

// Run mounts a scene and draws it until ctx is done or the user quits with
// Esc, q or Ctrl-C. The scene is torn down before Run returns.
func (r *Renderer) Run(ctx context.Context) error {
	state := newSceneState()
	scene := r.scenes.NewScene(state)
	if err := scene.Mount(); err != nil {
		return fmt.Errorf("mount scene: %w", err)
	}
	defer scene.Teardown()
	r.logger.Info("scene mounted")

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if r.handleEvent(ev) {
				r.logger.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			r.draw(state)
		}
	}
}

// handleEvent reports whether ev asks to quit.
func (r *Renderer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return true
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

func (r *Renderer) draw(state *sceneState) {
	elapsed, hearts := state.snapshot()
	now := r.clock.Now()

	r.screen.Clear()
	cols, rows := r.screen.Size()

	for _, p := range hearts {
		row, opacity, visible := fallFrame(p, now, rows)
		if !visible {
			continue
		}
		r.screen.SetContent(column(p, cols), row, heartRune, nil, heartStyle(opacity))
	}

	r.drawCard(cols, rows, r.cardLines(elapsed))
	r.screen.Show()
}

func (r *Renderer) cardLines(elapsed model.ElapsedDuration) []string {
	lines := []string{r.card.Title, "", "♪ open.spotify.com/track/" + r.card.TrackID, ""}
	lines = append(lines, elapsed.Lines(r.labels)...)

	if ref := r.scenes.Reference(); ref.Valid() {
		lines = append(lines, "", humanize.Time(ref.Time()))
	}
	return lines
}

// drawCard draws lines centred in a bordered box over the hearts.
func (r *Renderer) drawCard(cols, rows int, lines []string) {
	inner := 0
	for _, line := range lines {
		inner = max(inner, utf8.RuneCountInString(line))
	}
	width := inner + 4
	height := len(lines) + 2
	left := max((cols-width)/2, 0)
	top := max((rows-height)/2, 0)

	for y := top; y < top+height && y < rows; y++ {
		for x := left; x < left+width && x < cols; x++ {
			ch := ' '
			switch {
			case (y == top || y == top+height-1) && (x == left || x == left+width-1):
				ch = '+'
			case y == top || y == top+height-1:
				ch = '-'
			case x == left || x == left+width-1:
				ch = '|'
			}
			r.screen.SetContent(x, y, ch, nil, cardStyle)
		}
	}

	for i, line := range lines {
		style := cardStyle
		if i == 0 {
			style = titleStyle
		}
		offset := (inner - utf8.RuneCountInString(line)) / 2
		x := left + 2 + offset
		for _, ch := range line {
			if x >= cols {
				break
			}
			r.screen.SetContent(x, top+1+i, ch, nil, style)
			x++
		}
	}
}
