package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"activity-api/pkg/redis"
)

func newTestCache(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := redis.NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return NewCacheService(client, newTestLogger(t)), mr
}

func TestCacheService_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := cache.GetActivityCount(ctx, "a1")
	assert.False(t, ok)

	cache.SetActivityCount(ctx, "a1", 7)
	count, ok := cache.GetActivityCount(ctx, "a1")
	assert.True(t, ok)
	assert.Equal(t, 7, count)
}

func TestCacheService_MalformedValueDiscarded(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("staging:activity:a1:regcount", "not-a-number"))

	_, ok := cache.GetActivityCount(ctx, "a1")
	assert.False(t, ok)
}

func TestCacheService_InvalidateActivity(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.SetActivityCount(ctx, "a1", 3)
	cache.SetActivityCount(ctx, "a2", 5)

	cache.InvalidateActivity(ctx, "a1")

	_, ok := cache.GetActivityCount(ctx, "a1")
	assert.False(t, ok)
	count, ok := cache.GetActivityCount(ctx, "a2")
	assert.True(t, ok)
	assert.Equal(t, 5, count)
}

func TestCacheService_InvalidateAll(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.SetActivityCount(ctx, "a1", 3)
	cache.SetActivityCount(ctx, "a2", 5)

	cache.InvalidateAll(ctx)

	_, ok := cache.GetActivityCount(ctx, "a1")
	assert.False(t, ok)
	_, ok = cache.GetActivityCount(ctx, "a2")
	assert.False(t, ok)
}

func TestCacheService_ExpiryFallsBack(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.SetActivityCount(ctx, "a1", 9)
	mr.FastForward(redis.TTLCounts + 1)

	_, ok := cache.GetActivityCount(ctx, "a1")
	assert.False(t, ok)
}
