// Package config assembles runtime settings for the bbank client from
// defaults, an optional JSON file and command-line flags, in that order.
package config

import "time"

// Config holds runtime settings for the bbank CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database file.
//   - SeedDemoData: whether to load the demo users/accounts on first run
//     (only applied when the users table is empty).
//   - SessionValidity: how long a login session stays valid.
type Config struct {
	DatabaseDSN     string
	SeedDemoData    bool
	SessionValidity time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "bbank.db"
	c.SeedDemoData = true
	c.SessionValidity = 15 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
