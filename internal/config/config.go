package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the server.
type Config struct {
	Addr            string
	DatabaseURL     string
	SessionTTL      time.Duration
	CleanupInterval time.Duration
}

// Load reads configuration from environment variables with sane defaults.
// A .env file is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:            strings.TrimSpace(os.Getenv("SERVER_ADDR")),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SessionTTL:      parseHours(strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS"))),
		CleanupInterval: parseHours(strings.TrimSpace(os.Getenv("SESSION_CLEANUP_HOURS"))),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskplanner.db"
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 72 * time.Hour
	}
	if cfg.CleanupInterval == 0 {
		cfg.CleanupInterval = time.Hour
	}

	return cfg, nil
}

func parseHours(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
