package config

import (
	"os"
	"strconv"
	"time"
)

// CatalogConfig points at the upstream catalog REST service.
type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedisConfig configures the rate-limiter backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig bounds mutation requests per client.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// Config is the dashboard service configuration.
type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Catalog     CatalogConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
	SessionTTL  time.Duration
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:        getEnv("HTTP_PORT", "8090"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Catalog: CatalogConfig{
			BaseURL: getEnv("CATALOG_BASE_URL", "http://localhost:8080"),
			Timeout: getDuration("CATALOG_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getInt("RATE_LIMIT_MAX", 60),
			Window:      getDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		SessionTTL: getDuration("SESSION_TTL", 30*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
