package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the RelatioNest CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the RelatioNest HTTP API.
//   - DatabasePath: SQLite file holding the session.
//   - RequestTimeout: upper bound for a single API request.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.DatabasePath = defaultDatabasePath()
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "warn"
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "relationest.db"
	}
	return filepath.Join(dir, "relationest", "session.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
