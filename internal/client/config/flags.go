package config

import (
	"flag"
	"os"
	"time"

	"skillmarket/internal/client/services"
	"skillmarket/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the marketplace API
//	-t int      request timeout in seconds
//	-d string   path to the local session database
//	-r string   re-auth policy: block | replace | logout-first
//	-v          verbose (debug) logging
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// stages (-c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-r", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the marketplace API")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local session database")
	policy := fs.String("r", string(cfg.ReauthPolicy), "re-auth policy: block | replace | logout-first")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
	cfg.ReauthPolicy = services.ReauthPolicy(*policy)
}
