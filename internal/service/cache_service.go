package service

import (
	"context"
	"strconv"

	"activity-api/pkg/logger"
	"activity-api/pkg/redis"
)

// CacheService caches derived registration counts in Redis. Every method
// degrades to a no-op result on a cache failure; the caller always has the
// store as the source of truth.
type CacheService struct {
	client *redis.Client
	log    *logger.Logger
}

// NewCacheService creates a new cache service
func NewCacheService(client *redis.Client, log *logger.Logger) *CacheService {
	return &CacheService{client: client, log: log}
}

// GetActivityCount returns a cached registration count and whether it was present.
func (c *CacheService) GetActivityCount(ctx context.Context, activityID string) (int, bool) {
	key := c.client.KeyBuilder.KeyActivityCount(activityID)
	val, err := c.client.Get(ctx, key)
	if err != nil {
		if !redis.IsNil(err) {
			c.log.WithError(err).Debug("activity count cache read failed")
		}
		return 0, false
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		c.log.WithField("value", val).Warn("discarding malformed cached count")
		return 0, false
	}
	return count, true
}

// SetActivityCount caches a registration count with a short TTL.
func (c *CacheService) SetActivityCount(ctx context.Context, activityID string, count int) {
	key := c.client.KeyBuilder.KeyActivityCount(activityID)
	if err := c.client.Set(ctx, key, strconv.Itoa(count), redis.TTLCounts); err != nil {
		c.log.WithError(err).Debug("activity count cache write failed")
	}
}

// InvalidateActivity drops one activity's cached count after a registration.
func (c *CacheService) InvalidateActivity(ctx context.Context, activityID string) {
	key := c.client.KeyBuilder.KeyActivityCount(activityID)
	if err := c.client.Delete(ctx, key); err != nil {
		c.log.WithError(err).Warn("activity count cache invalidation failed")
	}
}

// InvalidateAll drops every cached count after a bulk reset.
func (c *CacheService) InvalidateAll(ctx context.Context) {
	pattern := c.client.KeyBuilder.PatternActivityCounts()
	if err := c.client.InvalidatePattern(ctx, pattern); err != nil {
		c.log.WithError(err).Warn("activity count cache flush failed")
	}
}
