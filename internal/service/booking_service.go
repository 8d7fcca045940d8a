// Package service holds the business logic gluing the booking source, the
// snapshot cache and the reconciliation engine together.
package service

import (
	"context"
	"time"

	"github.com/example/roomline/internal/models"
	"github.com/example/roomline/internal/repository"
	"github.com/example/roomline/internal/timeline"
	"go.uber.org/zap"
)

// BookingSource fetches raw booking intervals for one room and day.
type BookingSource interface {
	FetchBookings(ctx context.Context, date, room string) ([]models.BookingInterval, error)
}

// RoomDirectory resolves per-room operating configuration.
type RoomDirectory interface {
	Lookup(name string) (models.RoomConfig, bool)
	Names() []string
}

// TimelineUpdateCallback is invoked after a fresh reconciliation for a room.
type TimelineUpdateCallback func(room string)

// TimelineData is the assembled response for one room and day.
type TimelineData struct {
	Room  models.Room
	Slots []models.Slot
}

// BookingService produces classified timelines, serving cached snapshots
// when they are fresh enough and reconciling from the source otherwise.
type BookingService struct {
	source          BookingSource
	repo            repository.Repository
	rooms           RoomDirectory
	logger          *zap.Logger
	defaultRoom     string
	snapshotTTL     time.Duration
	now             func() time.Time
	updateCallbacks []TimelineUpdateCallback
}

// NewBookingService creates a booking service reading the wall clock.
func NewBookingService(source BookingSource, repo repository.Repository, rooms RoomDirectory, logger *zap.Logger, defaultRoom string, snapshotTTL time.Duration) *BookingService {
	return NewBookingServiceWithClock(source, repo, rooms, logger, defaultRoom, snapshotTTL, time.Now)
}

// NewBookingServiceWithClock creates a booking service with an injected
// clock. The clock also fixes the locale whose local time the engine sees.
func NewBookingServiceWithClock(source BookingSource, repo repository.Repository, rooms RoomDirectory, logger *zap.Logger, defaultRoom string, snapshotTTL time.Duration, now func() time.Time) *BookingService {
	return &BookingService{
		source:          source,
		repo:            repo,
		rooms:           rooms,
		logger:          logger,
		defaultRoom:     defaultRoom,
		snapshotTTL:     snapshotTTL,
		now:             now,
		updateCallbacks: make([]TimelineUpdateCallback, 0),
	}
}

// RegisterUpdateCallback registers a callback invoked after every fresh
// reconciliation, so push channels can tell dashboards to refetch.
func (s *BookingService) RegisterUpdateCallback(callback TimelineUpdateCallback) {
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

func (s *BookingService) notifyUpdate(room string) {
	for _, callback := range s.updateCallbacks {
		callback(room)
	}
}

// Today returns the current date in the service's locale, formatted for the
// booking source query.
func (s *BookingService) Today() string {
	return s.now().Format("2006-01-02")
}

// DefaultRoom returns the room served when a request names none.
func (s *BookingService) DefaultRoom() string {
	return s.defaultRoom
}

// Rooms returns the configured room names.
func (s *BookingService) Rooms() []string {
	return s.rooms.Names()
}

// RoomConfig returns a room's configuration with defaults applied, and
// whether the room is actually configured.
func (s *BookingService) RoomConfig(name string) (models.RoomConfig, bool) {
	return s.rooms.Lookup(name)
}

// GetTimeline returns the classified timeline for one room and day. A cached
// snapshot is served when present; otherwise the source is queried, the
// timeline reconciled against the current instant, and the result cached.
func (s *BookingService) GetTimeline(ctx context.Context, date, roomName string) (*TimelineData, error) {
	cfg, configured := s.rooms.Lookup(roomName)
	if !configured {
		s.logger.Warn("serving unconfigured room with defaults", zap.String("room", roomName))
	}
	room := models.Room{Name: roomName, Bookable: cfg.Bookable}

	key := repository.SnapshotKey(date, roomName)
	if slots, err := s.repo.GetTimeline(ctx, key); err == nil {
		return &TimelineData{Room: room, Slots: slots}, nil
	}

	bookings, err := s.source.FetchBookings(ctx, date, roomName)
	if err != nil {
		return nil, err
	}

	slots, err := timeline.Reconcile(bookings, cfg, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveTimeline(ctx, key, slots, s.snapshotTTL); err != nil {
		// A failed cache write degrades to refetching next time.
		s.logger.Warn("failed to cache timeline snapshot", zap.Error(err))
	}

	s.logger.Info("timeline reconciled",
		zap.String("room", roomName),
		zap.String("date", date),
		zap.Int("bookings", len(bookings)),
		zap.Int("slots", len(slots)))

	s.notifyUpdate(roomName)

	return &TimelineData{Room: room, Slots: slots}, nil
}
