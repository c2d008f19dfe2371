package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validDashboardConfig() DashboardConfig {
	return DashboardConfig{
		FetchConcurrency: 1,
		FetchTimeout:     10 * time.Second,
		RecentLimit:      5,
		SessionTTL:       15 * time.Minute,
		JanitorInterval:  time.Minute,
	}
}

func TestDashboardConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DashboardConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*DashboardConfig) {}},
		{name: "zero concurrency", mutate: func(c *DashboardConfig) { c.FetchConcurrency = 0 }, wantErr: "DASHBOARD_FETCH_CONCURRENCY"},
		{name: "recent limit too large", mutate: func(c *DashboardConfig) { c.RecentLimit = 6 }, wantErr: "DASHBOARD_RECENT_LIMIT"},
		{name: "recent limit zero", mutate: func(c *DashboardConfig) { c.RecentLimit = 0 }, wantErr: "DASHBOARD_RECENT_LIMIT"},
		{name: "no fetch timeout", mutate: func(c *DashboardConfig) { c.FetchTimeout = 0 }, wantErr: "DASHBOARD_FETCH_TIMEOUT"},
		{name: "no session ttl", mutate: func(c *DashboardConfig) { c.SessionTTL = 0 }, wantErr: "DASHBOARD_SESSION_TTL"},
		{name: "zero janitor interval", mutate: func(c *DashboardConfig) { c.JanitorInterval = 0 }, wantErr: "DASHBOARD_JANITOR_INTERVAL"},
		{name: "negative janitor interval", mutate: func(c *DashboardConfig) { c.JanitorInterval = -time.Second }, wantErr: "DASHBOARD_JANITOR_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validDashboardConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "inventory")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DASHBOARD_FETCH_CONCURRENCY", "4")
	t.Setenv("DASHBOARD_FETCH_TIMEOUT", "3s")

	cfg, err := Load()
	assert.NoError(t, err)
	if cfg == nil {
		return
	}

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 4, cfg.Dashboard.FetchConcurrency)
	assert.Equal(t, 3*time.Second, cfg.Dashboard.FetchTimeout)
	assert.Equal(t, 5, cfg.Dashboard.RecentLimit)
	assert.Equal(t, 30*24*time.Hour, cfg.Dashboard.UpcomingWindow)
	assert.Contains(t, cfg.Database.DSN(), "dbname=inventory")
}
