package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/cleanwater/report-service/internal/domain"
)

func TestStatsCacheWithoutClientIsNoop(t *testing.T) {
	cache := NewStatsCache(nil, time.Minute, zap.NewNop())
	ctx := context.Background()

	assert.Nil(t, cache.Get(ctx))
	// must not panic
	cache.Set(ctx, domain.ReportStats{Total: 1})
	cache.Invalidate(ctx)
	assert.Nil(t, cache.Get(ctx))
}

func TestNilStatsCacheIsSafe(t *testing.T) {
	var cache *StatsCache
	ctx := context.Background()

	assert.Nil(t, cache.Get(ctx))
	cache.Set(ctx, domain.ReportStats{})
	cache.Invalidate(ctx)
}
