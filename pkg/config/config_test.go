package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "REDIS_URL", "HH_TIMEOUT", "FEED_REFRESH_INTERVAL", "LOG_LEVEL", "JWT_TTL_MINUTES"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite://nocsdegree.db", cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 15*time.Second, cfg.HHTimeout)
	assert.Equal(t, 10*time.Minute, cfg.FeedRefreshInterval)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/nocsdegree")
	t.Setenv("HH_TIMEOUT", "30")
	t.Setenv("FEED_REFRESH_INTERVAL", "0")
	t.Setenv("DETAIL_CACHE_TTL", "5m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_TTL_MINUTES", "15")
	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://u:p@db/nocsdegree", cfg.DatabaseURL)
	assert.Equal(t, 30*time.Second, cfg.HHTimeout)
	assert.Zero(t, cfg.FeedRefreshInterval)
	assert.Equal(t, 5*time.Minute, cfg.DetailCacheTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 15, cfg.JWTTTLMinutes)
}

func TestGetEnv_Invalid(t *testing.T) {
	t.Setenv("X_DURATION", "soon")
	t.Setenv("X_INT", "many")
	t.Setenv("X_LEVEL", "loud")

	assert.Equal(t, time.Minute, getEnvDuration("X_DURATION", time.Minute))
	assert.Equal(t, 7, getEnvInt("X_INT", 7))
	assert.Equal(t, slog.LevelWarn, getEnvLevel("X_LEVEL", slog.LevelWarn))
}
