//go:build integration

package cache

import (
	"context"
	"testing"

	"matchdash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *RueidisCache {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	c, err := NewRedisCache(models.RedisCacheConfiguration{Hosts: []string{endpoint}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func TestRueidisCache(t *testing.T) {
	c := startRedis(t)

	t.Run("should rate limit after the allowed requests", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			retryAfter, err := c.GetRateLimit("198.51.100.7", 3)
			require.NoError(t, err)
			assert.Zero(t, retryAfter)
		}

		retryAfter, err := c.GetRateLimit("198.51.100.7", 3)
		require.NoError(t, err)
		assert.Positive(t, retryAfter)
	})

	t.Run("should count and reset login attempts", func(t *testing.T) {
		attempts, err := c.GetLoginAttempts("ops")
		require.NoError(t, err)
		assert.Zero(t, attempts)

		require.NoError(t, c.IncrementLoginAttempts("ops", 60))
		require.NoError(t, c.IncrementLoginAttempts("ops", 60))

		attempts, err = c.GetLoginAttempts("ops")
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)

		require.NoError(t, c.ResetLoginAttempts("ops"))

		attempts, err = c.GetLoginAttempts("ops")
		require.NoError(t, err)
		assert.Zero(t, attempts)
	})
}
