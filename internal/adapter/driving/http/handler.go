// Package httphandler implements the JSON API driving adapter.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

// ElapsedSource is what the API needs from the scene service.
type ElapsedSource interface {
	Elapsed() model.ElapsedDuration
	Reference() model.ReferenceInstant
}

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	elapsed ElapsedSource
	labels  model.UnitLabels
	now     func() time.Time
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(elapsed ElapsedSource, labels model.UnitLabels, logger *slog.Logger) *Handler {
	return &Handler{
		elapsed: elapsed,
		labels:  labels,
		now:     time.Now,
		logger:  logger,
	}
}

// RegisterAPIRoutes registers all JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/elapsed", h.Elapsed)
}

// ApplyMiddleware wraps next with logging and recovery middleware.
func ApplyMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, next)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// Elapsed returns the time since the reference instant, recomputed on every
// request.
func (h *Handler) Elapsed(w http.ResponseWriter, _ *http.Request) {
	ref := h.elapsed.Reference()
	if !ref.Valid() {
		h.logger.Warn("reference instant is not parsable, reporting zero", "reference", ref.Raw())
	}

	writeJSON(w, http.StatusOK, toElapsedResponse(h.elapsed.Elapsed(), ref, h.labels))
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   h.now().UTC().Format(time.RFC3339),
	})
}
