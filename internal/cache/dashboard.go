package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"clienthub/internal/config"
)

const dashboardKey = "dashboard:summary"

// NewRedisClient builds a Redis client from config, or returns nil when no
// address is configured (caching disabled).
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// DashboardCache holds the serialized dashboard summary in Redis under a
// single key with a short TTL. A nil client degrades to a permanent miss,
// and any Redis failure is logged and treated as a miss — the dashboard
// must always be computable without the cache.
type DashboardCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewDashboardCache wraps the given Redis client. rdb may be nil.
func NewDashboardCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *DashboardCache {
	return &DashboardCache{rdb: rdb, ttl: ttl, log: log}
}

// Get returns the cached payload and whether it was present.
func (c *DashboardCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("dashboard cache read failed", zap.Error(err))
		}
		return nil, false
	}
	return b, true
}

// Set stores the payload with the configured TTL.
func (c *DashboardCache) Set(ctx context.Context, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, dashboardKey, payload, c.ttl).Err(); err != nil {
		c.log.Warn("dashboard cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached summary. Called after every mutation; the TTL
// covers any missed invalidation.
func (c *DashboardCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, dashboardKey).Err(); err != nil {
		c.log.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
