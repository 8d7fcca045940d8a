package api

import (
	"encoding/json"
	"net/http"

	"github.com/example/roomline/internal/logging"
)

// StatusHandler reports the booking source authentication state.
type StatusHandler struct {
	reporter StatusReporter
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(reporter StatusReporter) *StatusHandler {
	return &StatusHandler{reporter: reporter}
}

// ServeHTTP handles GET /api/status requests.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	json.NewEncoder(w).Encode(h.reporter.Status())
}

// LogsHandler serves the recent in-memory log entries.
type LogsHandler struct {
	sink logging.LogSink
}

// NewLogsHandler creates a new logs handler.
func NewLogsHandler(sink logging.LogSink) *LogsHandler {
	return &LogsHandler{sink: sink}
}

// ServeHTTP handles GET /api/logs requests.
func (h *LogsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	json.NewEncoder(w).Encode(map[string][]logging.Entry{
		"logs": h.sink.Recent(),
	})
}
