package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*redisRepository, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return &redisRepository{client: client}, server
}

func TestRedisRepositorySetAndGet(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()

	value, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, repo.Set(ctx, "slots", map[string][]string{"2025-03-01": {"09:00"}}, time.Minute))
	value, err = repo.Get(ctx, "slots")
	require.NoError(t, err)
	assert.JSONEq(t, `{"2025-03-01":["09:00"]}`, value)

	server.FastForward(2 * time.Minute)
	value, err = repo.Get(ctx, "slots")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestRedisRepositoryIncrementAndExists(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "version")
	require.NoError(t, err)
	assert.False(t, exists)

	first, err := repo.Increment(ctx, "version")
	require.NoError(t, err)
	second, err := repo.Increment(ctx, "version")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	exists, err = repo.Exists(ctx, "version")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, "version"))
	exists, err = repo.Exists(ctx, "version")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisRepositoryTrySetNX(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()

	acquired, err := repo.TrySetNX(ctx, "lock", "owner-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "lock", "owner-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	stored, err := repo.Get(ctx, "lock")
	require.NoError(t, err)
	assert.Equal(t, `"owner-a"`, stored)

	require.NoError(t, repo.Expire(ctx, "lock", 5*time.Minute))
	assert.Equal(t, 5*time.Minute, server.TTL("lock"))
}
