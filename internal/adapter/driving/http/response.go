package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON representation of the health check.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ReferenceResponse describes the configured reference instant.
type ReferenceResponse struct {
	Raw   string `json:"raw"`
	At    string `json:"at,omitempty"`
	Valid bool   `json:"valid"`
}

// ElapsedResponse is the JSON representation of the elapsed-time counter.
type ElapsedResponse struct {
	Months    int64             `json:"months"`
	Days      int64             `json:"days"`
	Hours     int64             `json:"hours"`
	Minutes   int64             `json:"minutes"`
	Seconds   int64             `json:"seconds"`
	Lines     []string          `json:"lines"`
	Reference ReferenceResponse `json:"reference"`
}

func toElapsedResponse(d model.ElapsedDuration, ref model.ReferenceInstant, labels model.UnitLabels) ElapsedResponse {
	resp := ElapsedResponse{
		Months:  d.Months,
		Days:    d.Days,
		Hours:   d.Hours,
		Minutes: d.Minutes,
		Seconds: d.Seconds,
		Lines:   d.Lines(labels),
		Reference: ReferenceResponse{
			Raw:   ref.Raw(),
			Valid: ref.Valid(),
		},
	}
	if ref.Valid() {
		resp.Reference.At = ref.Time().Format(time.RFC3339)
	}
	return resp
}
