//go:build integration

package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	otelMocks "venuebook/infras/otel/mocks"
	"venuebook/shared/cache"
)

func startRedis(t *testing.T) (cache.RedisCache, *redis.Client) {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return cache.NewRedisCache(client, otelMocks.NewOtel()), client
}

func TestIncrement_Concurrent(t *testing.T) {
	redisCache, client := startRedis(t)

	const workers = 50

	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := redisCache.Increment(context.Background(), "venuebook:limiter:test", 60)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	count, err := client.Get(context.Background(), "venuebook:limiter:test").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(workers), count)
}

func TestIncrement_WindowIsNotExtended(t *testing.T) {
	redisCache, client := startRedis(t)

	ctx := context.Background()
	key := "venuebook:limiter:window"

	count, err := redisCache.Increment(ctx, key, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	time.Sleep(1500 * time.Millisecond)

	count, err = redisCache.Increment(ctx, key, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, 2*time.Second)

	time.Sleep(2 * time.Second)

	count, err = redisCache.Increment(ctx, key, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestIncrement_WithoutExpiry(t *testing.T) {
	redisCache, client := startRedis(t)

	ctx := context.Background()

	_, err := redisCache.Increment(ctx, "venuebook:venue:generation", 0)
	require.NoError(t, err)

	ttl, err := client.TTL(ctx, "venuebook:venue:generation").Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)
}
