package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "water-report-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Empty(t, cfg.Postgres.DSN)
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.True(t, cfg.Seed.DemoData)
	assert.Equal(t, 30*time.Second, cfg.Cache.StatsTTL())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("CACHE_STATS_TTL_SECONDS", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.False(t, cfg.Seed.DemoData)
	assert.Equal(t, 5*time.Second, cfg.Cache.StatsTTL())
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestInvalidRedisDBFails(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestRequestTimeoutDisabledWhenNonPositive(t *testing.T) {
	app := AppConfig{RequestTimeoutSeconds: 0}
	assert.Equal(t, time.Duration(0), app.RequestTimeout())

	cacheCfg := CacheConfig{StatsTTLSeconds: -1}
	assert.Equal(t, time.Duration(0), cacheCfg.StatsTTL())
}
