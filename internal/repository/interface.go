// Package repository defines the interface for the timeline snapshot cache
package repository

import (
	"context"
	"time"

	"github.com/example/roomline/internal/models"
)

// Repository caches reconciled timelines keyed by "date|room". The booking
// source stays authoritative; entries exist only to absorb repeated dashboard
// requests within the configured TTL.
type Repository interface {
	SaveTimeline(ctx context.Context, key string, slots []models.Slot, ttl time.Duration) error
	GetTimeline(ctx context.Context, key string) ([]models.Slot, error)
	DeleteTimeline(ctx context.Context, key string) error
	ListTimelineKeys(ctx context.Context) ([]string, error)
}

// SnapshotKey builds the cache key for one room and day.
func SnapshotKey(date, room string) string {
	return date + "|" + room
}
