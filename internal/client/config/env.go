package config

import (
	"os"
	"time"

	"skillmarket/internal/client/services"
)

// Environment variable names. SKILLMARKET_API_URL selects the backend the
// same way the web dashboard's build-mode base URL does.
const (
	envAPIBaseURL     = "SKILLMARKET_API_URL"
	envRequestTimeout = "SKILLMARKET_REQUEST_TIMEOUT"
	envDatabasePath   = "SKILLMARKET_DB_PATH"
	envReauthPolicy   = "SKILLMARKET_REAUTH_POLICY"
)

// parseEnv overlays cfg with values from the environment. An unparseable
// timeout is ignored rather than fatal; the prior value stands.
func parseEnv(cfg *Config) {
	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envReauthPolicy); v != "" {
		cfg.ReauthPolicy = services.ReauthPolicy(v)
	}
}
