package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel slog.Level

	// DatabaseURL is a postgres DSN or sqlite://path.
	DatabaseURL string
	// RedisURL is optional; empty disables the detail cache.
	RedisURL       string
	DetailCacheTTL time.Duration

	HHBaseURL   string
	HHUserAgent string
	HHTimeout   time.Duration

	FeedRefreshInterval time.Duration
	TaxonomyPath        string
	StaticDir           string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	AdminEmail    string
	AdminPassword string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnvLevel("LOG_LEVEL", slog.LevelInfo),
		DatabaseURL:         getEnv("DATABASE_URL", "sqlite://nocsdegree.db"),
		RedisURL:            os.Getenv("REDIS_URL"),
		DetailCacheTTL:      getEnvDuration("DETAIL_CACHE_TTL", time.Hour),
		HHBaseURL:           getEnv("HH_BASE_URL", "https://api.hh.ru"),
		HHUserAgent:         getEnv("HH_USER_AGENT", "nocsdegree/1.0 (admin@nocsdegree.ru)"),
		HHTimeout:           getEnvDuration("HH_TIMEOUT", 15*time.Second),
		FeedRefreshInterval: getEnvDuration("FEED_REFRESH_INTERVAL", 10*time.Minute),
		TaxonomyPath:        os.Getenv("TAXONOMY_PATH"),
		StaticDir:           getEnv("STATIC_DIR", "./static"),
		JWTSecret:           getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:           getEnv("JWT_ISSUER", "nocsdegree"),
		JWTTTLMinutes:       getEnvInt("JWT_TTL_MINUTES", 60),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("90s", "10m") and plain seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func getEnvLevel(key string, def slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		return def
	}
	return lvl
}
