// Package repository provides the initialization for repository implementations
package repository

import (
	"github.com/example/roomline/internal/config"
	"github.com/example/roomline/internal/repository/memory"
	"github.com/example/roomline/internal/repository/redis"
)

// Constructor hooks, assigned in init so the factory stays decoupled from
// the concrete packages at declaration time.
var (
	newRedisRepository  func(cfg config.RedisConfig) (Repository, error)
	newMemoryRepository func() Repository
)

func init() {
	newRedisRepository = func(cfg config.RedisConfig) (Repository, error) {
		return redis.NewRepository(cfg)
	}

	newMemoryRepository = func() Repository {
		return memory.NewRepository()
	}
}

// NewRepository selects the Redis-backed cache when enabled, otherwise the
// in-process cache.
func NewRepository(cfg config.RedisConfig) (Repository, error) {
	if cfg.Enabled {
		return newRedisRepository(cfg)
	}
	return newMemoryRepository(), nil
}
