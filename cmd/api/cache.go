// ABOUTME: Cache backend selection for the API server
// ABOUTME: Builds the memory, Redis or SQLite cache named by CACHE_TYPE, falling back to memory

package main

import (
	"time"

	"mdpreview-api/core/interfaces"
	"mdpreview-api/infrastructure/cache/memory"
	"mdpreview-api/infrastructure/cache/redis"
	"mdpreview-api/infrastructure/cache/sqlite"
	"mdpreview-api/pkg/config"
)

// newCache returns the configured cache and a function that releases it
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	memoryCache := func() interfaces.Cache {
		return memory.NewMemoryCache(
			time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second,
			memory.DefaultCleanupInterval,
		)
	}
	noop := func() {}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache(), noop
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, closer(redisCache.Close, logger)

	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"path":  cfg.Cache.SQLite.Path,
				"error": err.Error(),
			})
			return memoryCache(), noop
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache, closer(sqliteCache.Close, logger)

	default:
		logger.Info("Using memory cache", nil)
		return memoryCache(), noop
	}
}

func closer(close func() error, logger interfaces.Logger) func() {
	return func() {
		if err := close(); err != nil {
			logger.Warn("Failed to close cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
