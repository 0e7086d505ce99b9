// Package config assembles the CLI's runtime settings. Sources are
// overlaid in order: defaults, JSON file (-c/-config), environment,
// command-line flags; later sources win.
package config

import (
	"time"

	"skillmarket/internal/client/services"
)

// Config holds runtime settings for the SkillMarket CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the marketplace API.
//   - RequestTimeout: the single timeout applied to every API call.
//   - DatabasePath: SQLite file holding the persisted session.
//   - ReauthPolicy: what login/register do when a session is already
//     active (block | replace | logout-first).
//   - Verbose: enable debug-level logging.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	ReauthPolicy   services.ReauthPolicy
	Verbose        bool
}

// LoadDefaults populates c with the development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "skillmarket.db"
	c.ReauthPolicy = services.ReauthBlock
	c.Verbose = false
}

// LoadConfig constructs a Config by applying defaults and overlaying the
// JSON file, environment variables, and flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
