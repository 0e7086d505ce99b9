package config

import (
	"encoding/json"
	"os"
	"time"

	"skillmarket/internal/client/services"
	"skillmarket/internal/flagx"
	"skillmarket/internal/timex"
)

// jsonConfig is the DTO for the optional JSON config file. timex.Duration
// lets the timeout be written as "15s" or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
	ReauthPolicy   string         `json:"reauth_policy"`
	Verbose        *bool          `json:"verbose"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Without the flag nothing is loaded. Read or unmarshal errors panic, as
// a broken config file is unrecoverable at startup.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ReauthPolicy != "" {
		cfg.ReauthPolicy = services.ReauthPolicy(jc.ReauthPolicy)
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
}
