// Package web pushes timeline update notifications to connected dashboards
// over server-sent events.
package web

import (
	"net/http"

	"github.com/r3labs/sse/v2"
	"go.uber.org/zap"
)

// updateStream is the single event stream dashboards subscribe to.
const updateStream = "updates"

// SSEManager broadcasts an "update" event whenever a room's timeline is
// freshly reconciled; clients react by refetching the bookings endpoint.
type SSEManager struct {
	server *sse.Server
	logger *zap.Logger
}

// NewSSEManager creates a new server-sent events manager.
func NewSSEManager(logger *zap.Logger) *SSEManager {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(updateStream)

	return &SSEManager{
		server: server,
		logger: logger,
	}
}

// SetupRoutes registers the /events endpoint on the given mux.
func (m *SSEManager) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/events", m.handleEvents)
}

// handleEvents subscribes a client to the update stream. The stream query
// parameter is defaulted so plain EventSource connections work unchanged.
func (m *SSEManager) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("stream") == "" {
		q := r.URL.Query()
		q.Set("stream", updateStream)
		r.URL.RawQuery = q.Encode()
	}
	m.server.ServeHTTP(w, r)
}

// NotifyTimelineUpdate broadcasts that a room's timeline changed.
func (m *SSEManager) NotifyTimelineUpdate(room string) {
	m.logger.Info("publishing timeline update event", zap.String("room", room))
	m.server.Publish(updateStream, &sse.Event{
		Event: []byte("update"),
		Data:  []byte(room),
	})
}

// Shutdown closes all client connections.
func (m *SSEManager) Shutdown() {
	m.server.Close()
}
