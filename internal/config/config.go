// Package config provides configuration management for the application
package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        string
	APIKey      string
	Environment string
	Timezone    string
	RoomsFile   string
	DefaultRoom string
}

// SupabaseConfig holds the booking data source credentials
type SupabaseConfig struct {
	URL      string
	Key      string
	Email    string
	Password string
}

// RedisConfig holds Redis/Valkey configuration for the snapshot cache
type RedisConfig struct {
	Enabled bool
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// SnapshotTTL bounds how long a reconciled timeline is served from cache
	SnapshotTTL time.Duration
}

// GetServerConfig loads server configuration from environment variables
func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:        getEnv("PORT", "8080"),
		APIKey:      getEnv("API_KEY", ""),
		Environment: getEnv("ENV", "production"),
		Timezone:    getEnv("TIMEZONE", "Pacific/Auckland"),
		RoomsFile:   getEnv("ROOMS_FILE", "data/rooms.yaml"),
		DefaultRoom: getEnv("DEFAULT_ROOM", "Small Tutorial Room"),
	}
}

// GetSupabaseConfig loads booking source configuration from environment variables
func GetSupabaseConfig() SupabaseConfig {
	return SupabaseConfig{
		URL:      getEnv("SUPABASE_URL", ""),
		Key:      getEnv("SUPABASE_KEY", ""),
		Email:    getEnv("SUPABASE_EMAIL", ""),
		Password: getEnv("SUPABASE_PASSWORD", ""),
	}
}

// IsValid checks if all required booking source configuration is present
func (c SupabaseConfig) IsValid() bool {
	return c.URL != "" && c.Key != "" && c.Email != "" && c.Password != ""
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	// Parse snapshot TTL from environment variable (in seconds)
	ttlSeconds, _ := strconv.Atoi(getEnv("REDIS_SNAPSHOT_TTL_SECONDS", "30"))
	ttl := time.Duration(ttlSeconds) * time.Second

	// Parse DB index
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return RedisConfig{
		Enabled:     getEnvBool("REDIS_ENABLED", false),
		URI:         getEnv("REDIS_URI_ROOMLINE", ""),
		Host:        getEnv("REDIS_HOST_ROOMLINE", getEnv("REDIS_ADDRESS", "localhost")),
		Port:        getEnv("REDIS_PORT_ROOMLINE", "6379"),
		Username:    getEnv("REDIS_USERNAME_ROOMLINE", ""),
		Password:    getEnv("REDIS_PASSWORD_ROOMLINE", getEnv("REDIS_PASSWORD", "")),
		DB:          db,
		KeyPrefix:   getEnv("REDIS_KEY_PREFIX", "roomline:"),
		SnapshotTTL: ttl,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
