package api

import (
	"encoding/json"
	"net/http"

	"github.com/example/roomline/internal/models"
	"github.com/example/roomline/internal/utils"
	"go.uber.org/zap"
)

// BookingHandler serves the reconciled timeline for a room and day.
type BookingHandler struct {
	service TimelineService
	logger  *zap.Logger
}

// NewBookingHandler creates a new booking timeline handler.
func NewBookingHandler(service TimelineService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		logger:  logger,
	}
}

// bookingsResponse is the wire shape of the bookings endpoint. The dashboard
// keys off the field name.
type bookingsResponse struct {
	Bookings []models.Slot `json:"bookings"`
}

// ServeHTTP handles GET /api/bookings requests. Missing date and room query
// parameters fall back to today and the default room. Reconciliation
// failures degrade to an empty slot list; the cause is only logged.
func (h *BookingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.service.Today()
	}
	room := r.URL.Query().Get("room")
	if room == "" {
		room = h.service.DefaultRoom()
	}

	data, err := h.service.GetTimeline(r.Context(), date, room)
	if err != nil {
		h.logger.Error("failed to build timeline",
			zap.String("date", utils.SanitizeLogString(date)),
			zap.String("room", utils.SanitizeLogString(room)),
			zap.Error(err))
		json.NewEncoder(w).Encode(bookingsResponse{Bookings: []models.Slot{}})
		return
	}

	json.NewEncoder(w).Encode(bookingsResponse{Bookings: data.Slots})
}
