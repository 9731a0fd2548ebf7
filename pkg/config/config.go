package config

import (
	"os"
	"time"
)

// AppConfig general application configurations
type AppConfig struct {
	RateLimitEnabled bool
	RateLimitConfigs map[string]RateLimitConfig

	Environment string

	DatabaseURL string
	RedisURL    string

	UploadDir        string
	AvatarAccessPath string
}

// RateLimitConfig configuration for rate limiting
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// GetDefaultConfig returns default configuration
func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		RateLimitEnabled: true,
		RateLimitConfigs: map[string]RateLimitConfig{
			"POST /user/register": {
				Requests: 5,
				Window:   time.Minute,
			},
			"POST /user/login": {
				Requests: 10,
				Window:   time.Minute,
			},
			"default": {
				Requests: 60,
				Window:   time.Minute,
			},
		},
		Environment:      "development",
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		UploadDir:        envOr("UPLOAD_DIR", "uploads"),
		AvatarAccessPath: envOr("AVATAR_ACCESS_PATH", "/images"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
