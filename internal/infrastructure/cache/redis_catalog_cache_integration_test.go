//go:build integration

package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/boutique-api/internal/infrastructure/cache"
)

func TestRedisCatalogCache(t *testing.T) {
	ctx := context.Background()
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	c, err := cache.NewRedisCatalogCache(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()), time.Minute, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get(ctx, "categories")
	assert.False(t, ok)

	c.Set(ctx, "categories", []byte(`[{"id":1}]`))
	data, ok := c.Get(ctx, "categories")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(data))

	c.InvalidateCatalog(ctx)
	_, ok = c.Get(ctx, "categories")
	assert.False(t, ok, "tras invalidar, la generación anterior no se lee")
}
