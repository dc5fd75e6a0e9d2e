package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Backing stores
	PostgresURL string
	RedisURL    string

	// Steam Web API
	SteamAPIKey   string
	SteamTimeout  time.Duration
	SteamCacheTTL time.Duration

	// Profile refresher
	RefreshWorkers   int
	RefreshQueueSize int
	RefreshInterval  time.Duration
	RefreshStaleness time.Duration

	// Admin back-office
	AdminToken string
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		SteamTimeout:  getEnvDuration("STEAM_TIMEOUT", 10*time.Second),
		SteamCacheTTL: getEnvDuration("STEAM_CACHE_TTL", 5*time.Minute),

		RefreshWorkers:   getEnvInt("REFRESH_WORKERS", 2),
		RefreshQueueSize: getEnvInt("REFRESH_QUEUE_SIZE", 256),
		RefreshInterval:  getEnvDuration("REFRESH_INTERVAL", 15*time.Minute),
		RefreshStaleness: getEnvDuration("REFRESH_STALENESS", 24*time.Hour),

		AdminToken: getEnv("ADMIN_TOKEN", ""),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisURL, err = getEnvRequired("REDIS_URL"); err != nil {
		return nil, err
	}
	if cfg.SteamAPIKey, err = getEnvRequired("STEAM_API_KEY"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
