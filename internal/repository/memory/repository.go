// Package memory provides an in-process implementation of the snapshot cache
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/example/roomline/internal/models"
)

// ErrNotFound is returned when a requested snapshot is not cached
var ErrNotFound = errors.New("snapshot not found")

// entry is one cached timeline with its expiry deadline.
type entry struct {
	slots     []models.Slot
	expiresAt time.Time // zero means no expiry
}

// Repository implements the snapshot cache with in-memory storage
type Repository struct {
	snapshots map[string]entry
	mu        sync.RWMutex
}

// NewRepository creates a new in-memory snapshot cache
func NewRepository() *Repository {
	return &Repository{
		snapshots: make(map[string]entry),
	}
}

// SaveTimeline stores a reconciled timeline under the given key. A zero TTL
// keeps the snapshot until it is overwritten or deleted.
func (r *Repository) SaveTimeline(ctx context.Context, key string, slots []models.Slot, ttl time.Duration) error {
	stored := make([]models.Slot, len(slots))
	copy(stored, slots)

	e := entry{slots: stored}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	r.mu.Lock()
	r.snapshots[key] = e
	r.mu.Unlock()
	return nil
}

// GetTimeline retrieves a cached timeline, treating expired entries as absent.
func (r *Repository) GetTimeline(ctx context.Context, key string) ([]models.Slot, error) {
	r.mu.RLock()
	e, ok := r.snapshots[key]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		r.mu.Lock()
		delete(r.snapshots, key)
		r.mu.Unlock()
		return nil, ErrNotFound
	}

	slots := make([]models.Slot, len(e.slots))
	copy(slots, e.slots)
	return slots, nil
}

// DeleteTimeline removes a cached timeline by key
func (r *Repository) DeleteTimeline(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.snapshots[key]; !ok {
		return ErrNotFound
	}
	delete(r.snapshots, key)
	return nil
}

// ListTimelineKeys returns the keys of all unexpired snapshots
func (r *Repository) ListTimelineKeys(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	keys := make([]string, 0, len(r.snapshots))
	for key, e := range r.snapshots {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}
