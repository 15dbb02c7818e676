//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/owneriq/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedisStore(t *testing.T) *RedisIdempotencyStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: Failed to terminate container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	store := NewRedisIdempotencyStore(redis.NewClient(opts))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisIdempotencyStore_Lifecycle(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()
	key := "owner-1:upload:abc"

	claimed, err := store.MarkProcessed(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = store.MarkProcessed(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, claimed, "second claim must lose")

	_, ok, err := store.Result(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok, "in-flight key has no result")

	require.NoError(t, store.Complete(ctx, key, `{"document_id":"d1"}`))
	result, ok, err := store.Result(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"document_id":"d1"}`, result)

	require.NoError(t, store.Release(ctx, key))
	processed, err := store.IsProcessed(ctx, key)
	require.NoError(t, err)
	assert.False(t, processed)
}

func TestRedisIdempotencyStore_CompleteAfterExpiry(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	_, err := store.MarkProcessed(ctx, "short", 50*time.Millisecond)
	require.NoError(t, err)
	time.Sleep(150 * time.Millisecond)

	assert.ErrorContains(t, store.Complete(ctx, "short", "late"), "expired")
}

func TestDialRedis(t *testing.T) {
	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	rdb, err := DialRedis(ctx, config.RedisConfig{Host: host, Port: port.Int()})
	require.NoError(t, err)
	defer rdb.Close()
	assert.NoError(t, rdb.Ping(ctx).Err())
}
