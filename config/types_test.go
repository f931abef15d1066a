package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Database: DatabaseConfig{
			Host:   "localhost",
			DBName: "gerenciador",
		},
		Authentication: AuthenticationConfig{JWTSecret: "secret"},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestValidate_Required(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantMsg: "server.port",
		},
		{
			name:    "missing db host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantMsg: "database.host",
		},
		{
			name:    "missing db name",
			mutate:  func(c *Config) { c.Database.DBName = "" },
			wantMsg: "database.dbname",
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.Authentication.JWTSecret = "" },
			wantMsg: "jwt_secret",
		},
		{
			name:    "digest hour out of range",
			mutate:  func(c *Config) { c.Notifications.DigestHourUTC = 24 },
			wantMsg: "digest_hour_utc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Notifications.SweepIntervalMinutes != 24*60 {
		t.Errorf("expected default daily sweep, got %d minutes", cfg.Notifications.SweepIntervalMinutes)
	}
	if cfg.Notifications.SweepBatchLimit != 50 {
		t.Errorf("expected default batch limit 50, got %d", cfg.Notifications.SweepBatchLimit)
	}
	if cfg.Notifications.DigestWindowHrs != 24 {
		t.Errorf("expected default 24h digest window, got %d", cfg.Notifications.DigestWindowHrs)
	}
	if cfg.Notifications.RetentionDays != 90 {
		t.Errorf("expected default 90 day retention, got %d", cfg.Notifications.RetentionDays)
	}
	if cfg.Notifications.BroadcastWorkers != 16 {
		t.Errorf("expected default 16 broadcast workers, got %d", cfg.Notifications.BroadcastWorkers)
	}
}
