package core

import (
	c "matchdash/internal/cache"
	"matchdash/internal/models"

	"go.uber.org/zap"
)

// NewCache returns nil when no cache is configured; rate limiting and login
// lockout are then disabled.
func NewCache(config models.CacheConfiguration) c.ICache {
	switch config.Type {
	case "redis":
		client, err := c.NewRedisCache(*config.Redis)
		if err != nil {
			zap.L().Fatal("Failed to connect to redis", zap.Error(err))
		}
		return client
	case "valkey":
		client, err := c.NewValkeyCache(*config.Valkey)
		if err != nil {
			zap.L().Fatal("Failed to connect to valkey", zap.Error(err))
		}
		return client
	default:
		zap.L().Warn("No cache configured, login rate limiting is disabled")
		return nil
	}
}
