// Package web implements the HTML page driving adapter using templ components
// and a Server-Sent Events stream of widget updates.
package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/ericfisherdev/heartpage/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/heartpage/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/heartpage/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/heartpage/internal/application"
	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

const (
	streamPath        = "/events"
	streamBuffer      = 64
	heartbeatInterval = 15 * time.Second

	playerHeight  = 80
	playerAllow   = "autoplay; clipboard-write; encrypted-media; fullscreen; picture-in-picture"
	playerSandbox = "allow-scripts allow-same-origin allow-popups allow-presentation"
)

// PageOptions holds the static content of the greeting card.
type PageOptions struct {
	Title       string
	Message     string // Markdown.
	TrackID     string
	ImageDir    string // Served at /media/ when set.
	ImageName   string
	ImageAlt    string
	ImageWidth  int
	ImageHeight int
	MaxStreams  int
}

// Handler is the web driving adapter that serves the page and its stream.
type Handler struct {
	scenes      *application.SceneService
	labels      model.UnitLabels
	opts        PageOptions
	messageHTML string
	streams     atomic.Int64
	heartbeat   time.Duration
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. The markdown
// message is rendered once here.
func NewHandler(
	scenes *application.SceneService,
	labels model.UnitLabels,
	opts PageOptions,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		scenes:      scenes,
		labels:      labels,
		opts:        opts,
		messageHTML: RenderMarkdown(opts.Message),
		heartbeat:   heartbeatInterval,
		logger:      logger,
	}
}

// Greeting renders the full page. The counter is pre-rendered with the
// current value so it is never blank before the stream connects.
func (h *Handler) Greeting(w http.ResponseWriter, r *http.Request) {
	component := pages.Greeting(h.greetingViewModel())
	layout := templates.Layout(h.opts.Title, component)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render greeting", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Stream mounts a fresh scene for this connection and relays its updates as
// Server-Sent Events until the client disconnects, then tears the scene down.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	current := h.streams.Add(1)
	defer h.streams.Add(-1)
	if h.opts.MaxStreams > 0 && current > int64(h.opts.MaxStreams) {
		http.Error(w, "too many streams", http.StatusServiceUnavailable)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	sink := newStreamSink(h.labels, streamBuffer)
	scene := h.scenes.NewScene(sink)
	if err := scene.Mount(); err != nil {
		h.logger.Error("failed to mount scene", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer scene.Teardown()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("stream connected", "streams", current)

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case e := <-sink.events:
			if err := writeSSEEvent(w, e); err != nil {
				h.logger.Warn("stream write failed", "event", e.name, "error", err)
				return
			}
			flusher.Flush()
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case <-r.Context().Done():
			h.logger.Info("stream disconnected", "dropped_events", sink.dropped.Load())
			return
		}
	}
}

func (h *Handler) greetingViewModel() vm.GreetingViewModel {
	return vm.GreetingViewModel{
		Title:       h.opts.Title,
		MessageHTML: h.messageHTML,
		Player: vm.PlayerViewModel{
			URL:     playerURL(h.opts.TrackID),
			Height:  playerHeight,
			Allow:   playerAllow,
			Sandbox: playerSandbox,
		},
		Image: h.imageViewModel(),
		Counter: vm.CounterViewModel{
			Lines:      h.scenes.Elapsed().Lines(h.labels),
			StreamPath: streamPath,
		},
	}
}

func (h *Handler) imageViewModel() vm.ImageViewModel {
	if h.opts.ImageDir == "" || h.opts.ImageName == "" {
		return vm.ImageViewModel{}
	}
	return vm.ImageViewModel{
		Src:    "/media/" + url.PathEscape(h.opts.ImageName),
		Alt:    h.opts.ImageAlt,
		Width:  h.opts.ImageWidth,
		Height: h.opts.ImageHeight,
	}
}

// playerURL builds the embed address for a track identifier.
func playerURL(trackID string) string {
	return "https://open.spotify.com/embed/track/" + url.PathEscape(trackID) + "?utm_source=generator&theme=0"
}
