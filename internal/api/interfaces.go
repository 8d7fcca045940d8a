package api

import (
	"context"

	"github.com/example/roomline/internal/models"
	"github.com/example/roomline/internal/service"
	"github.com/example/roomline/internal/supabase"
)

// TimelineService defines the service operations needed by the API handlers.
type TimelineService interface {
	GetTimeline(ctx context.Context, date, room string) (*service.TimelineData, error)
	Today() string
	DefaultRoom() string
	Rooms() []string
	RoomConfig(name string) (models.RoomConfig, bool)
}

// StatusReporter exposes the booking source authentication state.
type StatusReporter interface {
	Status() supabase.Status
}
