package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/pulsefeed/pulsefeed/internal/buildinfo"
	"github.com/pulsefeed/pulsefeed/internal/client/cli"
	"github.com/pulsefeed/pulsefeed/internal/client/config"
	"github.com/pulsefeed/pulsefeed/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Diagnostics go to stderr so they don't interleave with the screens.
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
