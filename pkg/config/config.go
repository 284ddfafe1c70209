// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, upstream, and TTL settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Upstream contains upstream API configuration
	Upstream UpstreamConfig

	// TTL contains cache lifetime configuration
	TTL TTLConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RequestsPerSecond limits requests per client IP; 0 disables limiting
	RequestsPerSecond float64
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// MaxEntries bounds the number of cached entries
	MaxEntries int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// UpstreamConfig holds upstream API configuration
type UpstreamConfig struct {
	// BaseURL is the upstream API root
	BaseURL string

	// Timeout bounds each upstream call
	Timeout time.Duration

	// RequestsPerSecond throttles upstream calls; 0 disables throttling
	RequestsPerSecond float64
}

// TTLConfig holds cache lifetime configuration
type TTLConfig struct {
	// Feed is the lifetime of cached activity feeds
	Feed time.Duration

	// Metadata is the lifetime of cached video and user metadata
	Metadata time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level to emit ("debug", "info", "warn", "error")
	Level string

	// JSONFormat selects the JSON formatter instead of text
	JSONFormat bool
}

// Load reads configuration from a .env file (when present) and the
// environment. Environment variables take precedence over .env values.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is a valid source
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8000"),
			RequestsPerSecond: getEnvAsFloatOrDefault("SERVER_RATE_LIMIT", 0),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				MaxEntries: getEnvAsIntOrDefault("MEMORY_CACHE_MAX_ENTRIES", 10000),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "cache.db"),
			},
		},
		Upstream: UpstreamConfig{
			BaseURL:           getEnvOrDefault("UPSTREAM_BASE_URL", "https://gdata.youtube.com"),
			Timeout:           getEnvAsDurationOrDefault("UPSTREAM_TIMEOUT", 10*time.Second),
			RequestsPerSecond: getEnvAsFloatOrDefault("UPSTREAM_RATE_LIMIT", 10),
		},
		TTL: TTLConfig{
			Feed:     getEnvAsDurationOrDefault("FEED_TTL", 15*time.Minute),
			Metadata: getEnvAsDurationOrDefault("METADATA_TTL", 24*time.Hour),
		},
		Log: LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			JSONFormat: getEnvAsBoolOrDefault("LOG_JSON", false),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as a duration
// ("30s", "15m") or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Upstream.BaseURL == "" {
		return errors.New("upstream base URL cannot be empty")
	}

	if c.TTL.Feed <= 0 || c.TTL.Metadata <= 0 {
		return errors.New("cache TTLs must be positive")
	}

	return nil
}
