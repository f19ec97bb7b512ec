package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lifeterm/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	// Logs go to stderr; stdout is the render surface.
	level, err := cfg.LogLevel()
	if err != nil {
		// Unreachable after Validate.
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting simulation",
		"size", cfg.World.Size,
		"generations", cfg.Run.Generations,
		"delay", cfg.Run.Delay,
	)
	if _, err := app.NewRunner(cfg, os.Stdout, logger).Run(ctx); err != nil {
		logger.Error("simulation failed", "error", err)
		return 1
	}
	return 0
}
