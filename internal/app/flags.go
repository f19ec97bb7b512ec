package app

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"lifeterm/internal/config"
)

// Options represents the command-line parameters shared by the terminal
// runner and the GUI viewer. Every flag has a short and a long name.
type Options struct {
	ConfigPath  string
	File        string
	Generations int
	Size        int
	Delay       time.Duration
	Seed        int64
	Output      string
	OutputDir   string
	NoSave      bool
	NoColor     bool
}

// NewOptions returns Options whose defaults mirror the embedded configuration
// so that -help shows meaningful values.
func NewOptions(defaults *config.Config) *Options {
	return &Options{
		Generations: defaults.Run.Generations,
		Size:        defaults.World.Size,
		Delay:       defaults.Run.Delay,
		Seed:        defaults.Run.Seed,
	}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	both := func(short, long string, bind func(name string)) {
		bind(short)
		bind(long)
	}
	both("c", "config", func(n string) { fs.StringVar(&o.ConfigPath, n, o.ConfigPath, "YAML config file (empty = built-in defaults)") })
	both("f", "file", func(n string) { fs.StringVar(&o.File, n, o.File, "`path` to a file of live-cell \"row col\" pairs (empty = random fill)") })
	both("g", "generations", func(n string) { fs.IntVar(&o.Generations, n, o.Generations, "number of generations to simulate") })
	both("n", "size", func(n string) { fs.IntVar(&o.Size, n, o.Size, "grid dimension N") })
	both("d", "delay", func(n string) { fs.DurationVar(&o.Delay, n, o.Delay, "pause between generations") })
	both("s", "seed", func(n string) { fs.Int64Var(&o.Seed, n, o.Seed, "seed for the random fill (0 = time-based)") })
	both("o", "output", func(n string) { fs.StringVar(&o.Output, n, o.Output, "where to save the final generation") })
	fs.StringVar(&o.OutputDir, "output-dir", o.OutputDir, "directory for census.csv and summary.csv")
	fs.BoolVar(&o.NoSave, "no-save", o.NoSave, "do not save the final generation")
	fs.BoolVar(&o.NoColor, "no-color", o.NoColor, "disable ANSI colours")
}

// Apply copies every flag that was explicitly set on fs into cfg and
// re-validates it.
func (o *Options) Apply(fs *flag.FlagSet, cfg *config.Config) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f", "file":
			cfg.Run.Input = o.File
		case "g", "generations":
			cfg.Run.Generations = o.Generations
		case "n", "size":
			cfg.World.Size = o.Size
		case "d", "delay":
			cfg.Run.Delay = o.Delay
		case "s", "seed":
			cfg.Run.Seed = o.Seed
		case "o", "output":
			abs, absErr := filepath.Abs(o.Output)
			if absErr != nil {
				err = fmt.Errorf("resolving output path: %w", absErr)
				return
			}
			cfg.Save.Dir, cfg.Save.File = filepath.Split(abs)
		case "output-dir":
			cfg.Telemetry.OutputDir = o.OutputDir
		case "no-save":
			cfg.Save.Enabled = !o.NoSave
		case "no-color":
			cfg.Render.Color = !o.NoColor
		}
	})
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// Parse binds, parses args and loads the resulting configuration.
func Parse(fs *flag.FlagSet, args []string) (*config.Config, error) {
	defaults, err := config.Load("")
	if err != nil {
		return nil, err
	}
	opts := NewOptions(defaults)
	opts.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg := defaults
	if opts.ConfigPath != "" {
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	if err := opts.Apply(fs, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
