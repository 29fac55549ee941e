package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Transports.
const (
	TransportTelegram = "telegram"
	TransportDiscord  = "discord"
)

// Storage drivers, derived from the DATABASE_URL scheme.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

const defaultDatabaseURL = "postgres://localhost:5432/rosterbot?sslmode=disable"

type Config struct {
	Transport      string        `env:"TRANSPORT" envDefault:"telegram"`
	TelegramToken  string        `env:"TELEGRAM_TOKEN"`
	LegacyToken    string        `env:"API_TOKEN"`
	DiscordToken   string        `env:"DISCORD_TOKEN"`
	GuildID        string        `env:"GUILD_ID"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	RunMigrations  bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
	DefaultLocale  string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	RepoTimeout    time.Duration `env:"REPO_TIMEOUT" envDefault:"5s"`
	DigestSchedule string        `env:"DIGEST_SCHEDULE"`
	Timezone       string        `env:"TIMEZONE" envDefault:"UTC"`
}

// Load reads .env when present, then the process environment, and validates
// the result.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI, ...).
	_ = godotenv.Load()
	return parse(env.Options{})
}

// parse reads the configuration through opts; a non-nil opts.Environment
// replaces the process environment.
func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies the configuration rules and fills derived defaults.
func (c *Config) validate() error {
	c.Transport = strings.ToLower(strings.TrimSpace(c.Transport))
	switch c.Transport {
	case TransportTelegram:
		if strings.TrimSpace(c.TelegramToken) == "" {
			c.TelegramToken = strings.TrimSpace(c.LegacyToken)
		}
		if c.TelegramToken == "" {
			return fmt.Errorf("config: TELEGRAM_TOKEN is required for the telegram transport")
		}
	case TransportDiscord:
		if strings.TrimSpace(c.DiscordToken) == "" {
			return fmt.Errorf("config: DISCORD_TOKEN is required for the discord transport")
		}
		for _, r := range c.GuildID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: GUILD_ID must be a Discord guild id (digits only)")
			}
		}
	default:
		return fmt.Errorf("config: TRANSPORT must be %q or %q, got %q", TransportTelegram, TransportDiscord, c.Transport)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Local default when DATABASE_URL is not provided.
		c.DatabaseURL = defaultDatabaseURL
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	switch c.StorageDriver() {
	case DriverPostgres:
		if parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing host", c.DatabaseURL)
		}
	case DriverSQLite:
		if c.SQLitePath() == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing sqlite path", c.DatabaseURL)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unsupported DATABASE_URL scheme %q", parsed.Scheme)
	}

	if c.RepoTimeout <= 0 {
		return fmt.Errorf("config: REPO_TIMEOUT must be positive")
	}
	return nil
}

// StorageDriver derives the repository backend from the DATABASE_URL scheme.
func (c *Config) StorageDriver() string {
	scheme, _, _ := strings.Cut(c.DatabaseURL, "://")
	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return DriverPostgres
	case "sqlite", "sqlite3":
		return DriverSQLite
	case "memory":
		return DriverMemory
	default:
		return ""
	}
}

// SQLitePath returns the file path of a sqlite:// DATABASE_URL.
func (c *Config) SQLitePath() string {
	_, path, _ := strings.Cut(c.DatabaseURL, "://")
	return path
}
