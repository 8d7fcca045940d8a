package api

import (
	"net/http"

	"github.com/example/roomline/internal/logging"
	"go.uber.org/zap"
)

// SetupRoutes configures the HTTP routes for the API. The api-key check
// guards the /api endpoints only; health probes stay open.
func SetupRoutes(service TimelineService, status StatusReporter, sink logging.LogSink, apiKey string, logger *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", HealthReadyHandler)

	// Booking timeline endpoint
	bookingHandler := NewBookingHandler(service, logger)
	mux.Handle("/api/bookings", RequireAPIKey(apiKey, logger, bookingHandler))

	// Room metadata endpoints
	roomHandler := NewRoomHandler(service, logger)
	mux.Handle("/api/rooms", RequireAPIKey(apiKey, logger, roomHandler))
	mux.Handle("/api/rooms/", RequireAPIKey(apiKey, logger, roomHandler))

	// Operational endpoints
	mux.Handle("/api/status", RequireAPIKey(apiKey, logger, NewStatusHandler(status)))
	mux.Handle("/api/logs", RequireAPIKey(apiKey, logger, NewLogsHandler(sink)))

	return mux
}
