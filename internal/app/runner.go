package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"lifeterm/internal/config"
	"lifeterm/internal/render"
	"lifeterm/internal/telemetry"
	"lifeterm/pkg/core"
	"lifeterm/pkg/sims/life"
)

// Result describes a finished run.
type Result struct {
	Final       *core.Grid
	Generations int
	SavedTo     string
	Summary     telemetry.Summary
}

// Runner drives the terminal simulation: initialise, step and render for the
// configured number of generations, then save the final grid.
type Runner struct {
	cfg    *config.Config
	out    io.Writer
	logger *slog.Logger
}

// NewRunner returns a Runner rendering to out.
func NewRunner(cfg *config.Config, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, out: out, logger: logger}
}

// Run executes the simulation. Cancelling ctx ends the generation loop early;
// the grid reached so far is still saved.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	grid, err := InitialGrid(r.cfg, r.logger)
	if err != nil {
		return nil, err
	}

	om, err := telemetry.NewOutputManager(r.cfg.Telemetry.OutputDir)
	if err != nil {
		return nil, err
	}
	defer om.Close()
	if err := om.WriteConfig(r.cfg); err != nil {
		return nil, err
	}

	collector := telemetry.NewCollector()
	term := render.NewTerminal(r.out, render.TerminalOptions{
		Alive: r.cfg.Render.Alive,
		Dead:  r.cfg.Render.Dead,
		Color: r.cfg.Render.Color,
		Clear: r.cfg.Render.Clear,
	})

	record := func(gen, births, deaths int) error {
		rec := telemetry.CensusRecord{
			Generation: gen,
			Population: life.Census(grid),
			Births:     births,
			Deaths:     deaths,
		}
		collector.Record(rec)
		if err := om.WriteCensus(rec); err != nil {
			return err
		}
		if err := term.Frame(grid, gen, rec.Population); err != nil {
			return fmt.Errorf("rendering generation %d: %w", gen, err)
		}
		return nil
	}

	if err := record(0, 0, 0); err != nil {
		return nil, err
	}

	gen := 0
	for gen < r.cfg.Run.Generations {
		if err := wait(ctx, r.cfg.Run.Delay); err != nil {
			r.logger.Info("simulation interrupted", "generation", gen)
			break
		}
		next := life.NextGeneration(grid)
		births, deaths := life.Diff(grid, next)
		grid = next
		gen++
		if err := record(gen, births, deaths); err != nil {
			return nil, err
		}
	}

	res := &Result{Final: grid, Generations: gen, Summary: collector.Summary()}
	if r.cfg.Save.Enabled {
		path, err := SaveGrid(r.cfg, grid)
		if err != nil {
			return nil, err
		}
		res.SavedTo = path
		r.logger.Info("saved final generation", "path", path, "population", res.Summary.Final)
	}

	if err := om.WriteSummary(res.Summary); err != nil {
		return nil, err
	}
	r.logger.Info("run complete",
		"generations", res.Summary.Generations,
		"final", res.Summary.Final,
		"min", res.Summary.Min,
		"max", res.Summary.Max,
		"mean", res.Summary.Mean,
		"stddev", res.Summary.StdDev,
	)
	return res, nil
}

// InitialGrid loads the configured input file, or fills a grid at random when
// none is set.
func InitialGrid(cfg *config.Config, logger *slog.Logger) (*core.Grid, error) {
	n := cfg.World.Size
	if cfg.Run.Input != "" {
		g, err := life.LoadFile(cfg.Run.Input, n)
		if err != nil {
			return nil, fmt.Errorf("loading initial generation: %w", err)
		}
		logger.Info("loaded initial generation", "path", cfg.Run.Input, "size", n, "population", life.Census(g))
		return g, nil
	}
	seed := cfg.Run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("random initial generation", "size", n, "seed", seed)
	return life.InitRandom(n, seed), nil
}

// SaveGrid writes g to the configured save path, creating its directory.
func SaveGrid(cfg *config.Config, g *core.Grid) (string, error) {
	path, err := cfg.SavePath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating save directory: %w", err)
	}
	if err := life.SaveFile(path, g); err != nil {
		return "", fmt.Errorf("saving final generation: %w", err)
	}
	return path, nil
}

// wait pauses for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
