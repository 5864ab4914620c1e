//go:build integration

package rediscache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startRedis runs a throwaway Redis container and returns its URL.
func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	}

	container, err := testcontainers.GenericContainer(ctx, req)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, container)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestProductCache_Redis(t *testing.T) {
	ctx := context.Background()
	cache, err := New(ctx, startRedis(t), time.Minute, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	catalog := []domain.Product{{ID: 1, Name: "milk", Unit: "l", Amount: 1}}

	_, gen, found, err := cache.GetProducts(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, gen)

	require.NoError(t, cache.SetProducts(ctx, gen, catalog))
	got, _, found, err := cache.GetProducts(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, catalog, got)

	t.Run("invalidation advances the generation", func(t *testing.T) {
		require.NoError(t, cache.Invalidate(ctx))

		_, next, found, err := cache.GetProducts(ctx)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, gen+1, next)
	})

	t.Run("stale write-back is dropped", func(t *testing.T) {
		_, readGen, _, err := cache.GetProducts(ctx)
		require.NoError(t, err)

		require.NoError(t, cache.Invalidate(ctx))
		require.NoError(t, cache.SetProducts(ctx, readGen, catalog))

		_, _, found, err := cache.GetProducts(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
