package config

import (
	"strings"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
)

func parseMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parseMap(map[string]string{"TELEGRAM_TOKEN": "123:abc"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Transport != TransportTelegram {
		t.Errorf("transport = %q, want telegram", cfg.Transport)
	}
	if cfg.DatabaseURL != defaultDatabaseURL || cfg.StorageDriver() != DriverPostgres {
		t.Errorf("database = %q (%s)", cfg.DatabaseURL, cfg.StorageDriver())
	}
	if !cfg.RunMigrations {
		t.Error("migrations should run by default")
	}
	if cfg.RepoTimeout != 5*time.Second {
		t.Errorf("repo timeout = %v, want 5s", cfg.RepoTimeout)
	}
	if cfg.DefaultLocale != "en" || cfg.Timezone != "UTC" || cfg.DigestSchedule != "" {
		t.Errorf("got %+v", cfg)
	}
}

func TestParseLegacyTelegramToken(t *testing.T) {
	cfg, err := parseMap(map[string]string{"API_TOKEN": "legacy"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.TelegramToken != "legacy" {
		t.Errorf("token = %q, want legacy", cfg.TelegramToken)
	}
}

func TestParseStorageDrivers(t *testing.T) {
	tests := []struct {
		url, driver, sqlitePath string
	}{
		{"postgresql://u:p@db:5432/roster", DriverPostgres, ""},
		{"sqlite://data/roster.db", DriverSQLite, "data/roster.db"},
		{"memory://", DriverMemory, ""},
	}
	for _, tt := range tests {
		cfg, err := parseMap(map[string]string{"TELEGRAM_TOKEN": "t", "DATABASE_URL": tt.url})
		if err != nil {
			t.Fatalf("parse %q: %v", tt.url, err)
		}
		if cfg.StorageDriver() != tt.driver {
			t.Errorf("%q: driver = %q, want %q", tt.url, cfg.StorageDriver(), tt.driver)
		}
		if tt.sqlitePath != "" && cfg.SQLitePath() != tt.sqlitePath {
			t.Errorf("%q: path = %q, want %q", tt.url, cfg.SQLitePath(), tt.sqlitePath)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"no telegram token", map[string]string{}, "TELEGRAM_TOKEN"},
		{"no discord token", map[string]string{"TRANSPORT": "discord"}, "DISCORD_TOKEN"},
		{"bad guild", map[string]string{"TRANSPORT": "discord", "DISCORD_TOKEN": "x", "GUILD_ID": "abc"}, "GUILD_ID"},
		{"bad transport", map[string]string{"TRANSPORT": "irc"}, "TRANSPORT"},
		{"bad scheme", map[string]string{"TELEGRAM_TOKEN": "t", "DATABASE_URL": "mysql://h/db"}, "scheme"},
		{"no host", map[string]string{"TELEGRAM_TOKEN": "t", "DATABASE_URL": "postgres:///db"}, "host"},
		{"no sqlite path", map[string]string{"TELEGRAM_TOKEN": "t", "DATABASE_URL": "sqlite://"}, "sqlite path"},
		{"bad timeout", map[string]string{"TELEGRAM_TOKEN": "t", "REPO_TIMEOUT": "soon"}, "config:"},
		{"zero timeout", map[string]string{"TELEGRAM_TOKEN": "t", "REPO_TIMEOUT": "0s"}, "REPO_TIMEOUT"},
	}
	for _, tt := range tests {
		_, err := parseMap(tt.vars)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want mention of %s", tt.name, err, tt.want)
		}
	}
}

func TestParseDiscord(t *testing.T) {
	cfg, err := parseMap(map[string]string{
		"TRANSPORT":       " Discord ",
		"DISCORD_TOKEN":   "tok",
		"GUILD_ID":        "123456",
		"DATABASE_URL":    "memory://",
		"DIGEST_SCHEDULE": "@daily",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Transport != TransportDiscord || cfg.GuildID != "123456" || cfg.DigestSchedule != "@daily" {
		t.Errorf("got %+v", cfg)
	}
}
