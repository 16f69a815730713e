package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DASHBOARD_PORT", "RECENT_LOOKUPS_LIMIT", "DB_PATH", "LOOKUP_RETENTION_HOURS", "PRUNE_SCHEDULE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.DashboardPort)
	assert.Equal(t, 10, cfg.RecentLookupsLimit)
	assert.Equal(t, "wallet_health.db", cfg.DBPath)
	assert.Equal(t, 168*time.Hour, cfg.LookupRetention)
	assert.Equal(t, "@hourly", cfg.PruneSchedule)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DASHBOARD_PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("LOOKUP_RETENTION_HOURS", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.DashboardPort)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, 2*time.Hour, cfg.LookupRetention)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoadBadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := Load()
	assert.Error(t, err)
}

func TestEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("DASHBOARD_PORT", "eighty")
	assert.Equal(t, 8080, envInt("DASHBOARD_PORT", 8080))
}

func TestValidate(t *testing.T) {
	base := Config{DashboardPort: 8080, DBPath: "a.db", LookupRetention: time.Hour}

	bad := base
	bad.DashboardPort = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.DBPath = ""
	assert.Error(t, bad.Validate())

	bad = base
	bad.LookupRetention = 0
	assert.Error(t, bad.Validate())

	assert.NoError(t, base.Validate())
}
