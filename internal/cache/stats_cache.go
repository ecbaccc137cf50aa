package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cleanwater/report-service/internal/domain"
)

const statsKey = "reports:stats"

// StatsCache keeps a short-lived snapshot of report statistics in Redis.
// Every method degrades to a no-op miss when Redis is unreachable or not
// configured, so the service keeps answering from the store.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatsCache builds the cache. A nil client disables caching entirely.
func NewStatsCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *StatsCache {
	return &StatsCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached snapshot, or nil on miss.
func (c *StatsCache) Get(ctx context.Context) *domain.ReportStats {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("stats cache read failed", zap.Error(err))
		}
		return nil
	}
	var stats domain.ReportStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		c.logger.Warn("stats cache payload corrupt", zap.Error(err))
		return nil
	}
	return &stats
}

// Set stores the snapshot with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, stats domain.ReportStats) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache write failed", zap.Error(err))
	}
}

// Invalidate drops the snapshot. Called after every report mutation.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, statsKey).Err(); err != nil {
		c.logger.Warn("stats cache invalidate failed", zap.Error(err))
	}
}
