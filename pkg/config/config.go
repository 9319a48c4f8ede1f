// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, conversion, sessions and logging

package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"time"
)

// DefaultMaxUploadBytes is the default upload bound: 10 MiB
const DefaultMaxUploadBytes int64 = 10 * 1024 * 1024

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Conversion contains document conversion configuration
	Conversion ConversionConfig

	// Session contains preview session configuration
	Session SessionConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// HTTPTimeout bounds outgoing requests (page fetches, upstream conversion)
	HTTPTimeout time.Duration

	// RateLimit is the number of requests allowed per client in RateWindow
	RateLimit int

	// RateWindow is the rate limiting window
	RateWindow time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite cache configuration
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
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// ConversionConfig holds document conversion configuration
type ConversionConfig struct {
	// MaxUploadBytes bounds uploaded files and fetched pages
	MaxUploadBytes int64

	// ConverterURL is an optional upstream convert endpoint
	ConverterURL string

	// CacheTTL is how long converted markdown is cached; zero disables it
	CacheTTL time.Duration
}

// SessionConfig holds preview session configuration
type SessionConfig struct {
	// TTL is how long an untouched session is kept
	TTL time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File, when set, receives logs through a rotating writer
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8000"),
			HTTPTimeout: getEnvAsDurationOrDefault("HTTP_TIMEOUT", 30*time.Second),
			RateLimit:   getEnvAsIntOrDefault("RATE_LIMIT", 60),
			RateWindow:  getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "cache.db"),
			},
		},
		Conversion: ConversionConfig{
			MaxUploadBytes: int64(getEnvAsIntOrDefault("MAX_UPLOAD_BYTES", int(DefaultMaxUploadBytes))),
			ConverterURL:   getEnvOrDefault("CONVERTER_URL", ""),
			CacheTTL:       getEnvAsDurationOrDefault("CONVERSION_CACHE_TTL", time.Hour),
		},
		Session: SessionConfig{
			TTL: getEnvAsDurationOrDefault("SESSION_TTL", 24*time.Hour),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
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

// getEnvAsDurationOrDefault accepts a Go duration ("90s", "1h") or a plain
// number of seconds
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.HTTPTimeout <= 0 {
		return errors.New("http timeout must be positive")
	}

	if c.Server.RateLimit < 1 || c.Server.RateWindow <= 0 {
		return errors.New("rate limit and window must be positive")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Conversion.MaxUploadBytes < 1 {
		return errors.New("max upload bytes must be positive")
	}

	if c.Conversion.CacheTTL < 0 || c.Session.TTL < 0 {
		return errors.New("ttl values cannot be negative")
	}

	if c.Conversion.ConverterURL != "" {
		u, err := url.Parse(c.Conversion.ConverterURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return errors.New("converter url must be an absolute http(s) URL")
		}
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
