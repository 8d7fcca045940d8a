// Package redis provides a Redis/Valkey implementation of the snapshot cache
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/roomline/internal/config"
	"github.com/example/roomline/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a requested snapshot is not cached
var ErrNotFound = errors.New("snapshot not found")

// Repository implements the snapshot cache with Redis storage
type Repository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRepository creates a new Redis snapshot cache
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		// Use DB from config if not specified in the URI
		if opt.DB == 0 {
			opt.DB = cfg.DB
		}

		// Use password from config if not in URI or if empty in URI
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		address := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
		client = redis.NewClient(&redis.Options{
			Addr:     address,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// timelineKey returns the Redis key for a cached timeline
func (r *Repository) timelineKey(key string) string {
	return fmt.Sprintf("%stimelines:%s", r.keyPrefix, key)
}

// SaveTimeline stores a reconciled timeline under the given key with a TTL
func (r *Repository) SaveTimeline(ctx context.Context, key string, slots []models.Slot, ttl time.Duration) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to marshal timeline: %w", err)
	}

	if err := r.client.Set(ctx, r.timelineKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save timeline: %w", err)
	}
	return nil
}

// GetTimeline retrieves a cached timeline by key
func (r *Repository) GetTimeline(ctx context.Context, key string) ([]models.Slot, error) {
	data, err := r.client.Get(ctx, r.timelineKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}

	var slots []models.Slot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timeline: %w", err)
	}
	return slots, nil
}

// DeleteTimeline removes a cached timeline by key
func (r *Repository) DeleteTimeline(ctx context.Context, key string) error {
	deleted, err := r.client.Del(ctx, r.timelineKey(key)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete timeline: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTimelineKeys returns the cache keys of all stored snapshots
func (r *Repository) ListTimelineKeys(ctx context.Context) ([]string, error) {
	pattern := r.timelineKey("*")
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list timelines: %w", err)
	}

	prefix := r.timelineKey("")
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, strings.TrimPrefix(k, prefix))
	}
	return out, nil
}
