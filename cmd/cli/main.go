package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"skillmarket/internal/client/cli"
	"skillmarket/internal/client/config"
	"skillmarket/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
