//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"lifeterm/internal/app"
	"lifeterm/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	level, err := cfg.LogLevel()
	if err != nil {
		// Unreachable after Validate.
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	grid, err := app.InitialGrid(cfg, logger)
	if err != nil {
		logger.Error("failed to initialise grid", "error", err)
		os.Exit(1)
	}
	seed := cfg.Run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := life.FromGrid(grid)
	game := app.New(sim, cfg.Viewer.Scale, cfg.Run.Generations, cfg.Run.Delay, seed, cfg.Run.Input != "")
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifeterm: " + sim.Name())
	ebiten.SetTPS(cfg.Viewer.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer failed", "error", err)
		os.Exit(1)
	}

	if cfg.Save.Enabled {
		path, err := app.SaveGrid(cfg, sim.Grid())
		if err != nil {
			logger.Error("failed to save final generation", "error", err)
			os.Exit(1)
		}
		logger.Info("saved final generation", "path", path, "generation", sim.Generation(), "population", sim.Population())
	}
}
