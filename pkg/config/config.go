package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Chain string

const (
	ChainSolana   Chain = "solana"
	ChainEthereum Chain = "ethereum"
	ChainUnknown  Chain = "unknown"
)

type Config struct {
	// Dashboard
	DashboardPort      int
	RecentLookupsLimit int

	// DB
	DBPath string

	// History retention
	LookupRetention time.Duration
	PruneSchedule   string // cron spec, e.g. "@hourly" or "0 */6 * * *"

	LogLevel zerolog.Level
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DashboardPort:      envInt("DASHBOARD_PORT", 8080),
		RecentLookupsLimit: envInt("RECENT_LOOKUPS_LIMIT", 10),
		DBPath:             envOr("DB_PATH", "wallet_health.db"),
		LookupRetention:    time.Duration(envInt("LOOKUP_RETENTION_HOURS", 168)) * time.Hour,
		PruneSchedule:      envOr("PRUNE_SCHEDULE", "@hourly"),
		LogLevel:           zerolog.InfoLevel,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("parse LOG_LEVEL %q: %w", v, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DashboardPort <= 0 || c.DashboardPort > 65535 {
		return fmt.Errorf("DASHBOARD_PORT out of range: %d", c.DashboardPort)
	}
	if c.RecentLookupsLimit < 0 {
		return fmt.Errorf("RECENT_LOOKUPS_LIMIT must not be negative: %d", c.RecentLookupsLimit)
	}
	if c.LookupRetention <= 0 {
		return fmt.Errorf("LOOKUP_RETENTION_HOURS must be positive")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH is empty")
	}
	return nil
}

// helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
