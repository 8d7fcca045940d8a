package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RoomHandler serves room metadata: the configured room list and the
// per-room operating hours.
type RoomHandler struct {
	service TimelineService
	logger  *zap.Logger
}

// NewRoomHandler creates a new room metadata handler.
func NewRoomHandler(service TimelineService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		logger:  logger,
	}
}

// roomInfo is the wire shape of one room's metadata.
type roomInfo struct {
	Name            string `json:"name"`
	Bookable        bool   `json:"bookable"`
	OpenTime        string `json:"open_time"`
	CloseTime       string `json:"close_time"`
	RestrictedHours bool   `json:"restricted_hours"`
}

// ServeHTTP handles GET /api/rooms and GET /api/rooms/{name}.
func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /api/rooms/{name}
	name := strings.TrimPrefix(r.URL.Path, "/api/rooms")
	name = strings.TrimPrefix(name, "/")

	if name == "" {
		h.listRooms(w, r)
		return
	}
	h.getRoom(w, r, name)
}

// listRooms handles GET /api/rooms to list the configured room names
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string][]string{
		"rooms": h.service.Rooms(),
	})
}

// getRoom handles GET /api/rooms/{name} to return one room's configuration
func (h *RoomHandler) getRoom(w http.ResponseWriter, r *http.Request, name string) {
	cfg, ok := h.service.RoomConfig(name)
	if !ok {
		h.logger.Info("room not configured", zap.String("room", name))
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(roomInfo{
		Name:            name,
		Bookable:        cfg.Bookable,
		OpenTime:        cfg.OpenTime,
		CloseTime:       cfg.CloseTime,
		RestrictedHours: cfg.RestrictedHours,
	})
}
