// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and session storage.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-backed cache with periodic expiry cleanup
// - http/standard: Standard library HTTP client with retry logic
// - logger/standard: Structured logger on logrus with optional file rotation
// - storage: Session storage on top of any cache backend
// - clipboard: System clipboard access for the CLI
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, memory.DefaultCleanupInterval)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// Every backend returns interfaces.ErrCacheMiss for missing or expired keys.
//
// # HTTP Client
//
// GET requests are retried on transport errors and 5xx responses:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := standard.NewStandardLogger(standard.Options{Level: "debug", Format: "json"})
//	logger.Info("Document loaded", map[string]interface{}{
//	    "file":       "notes.md",
//	    "characters": 1200,
//	})
package infrastructure
