// Package config provides configuration loading for the simulator.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run parameters.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Run       RunConfig       `yaml:"run"`
	Save      SaveConfig      `yaml:"save"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Viewer    ViewerConfig    `yaml:"viewer"`
	Log       LogConfig       `yaml:"log"`
}

// WorldConfig holds the grid dimension.
type WorldConfig struct {
	Size int `yaml:"size"` // N for the N×N grid
}

// RunConfig controls the generation loop.
type RunConfig struct {
	Generations int           `yaml:"generations"`
	Delay       time.Duration `yaml:"delay"` // pause between rendered frames
	Seed        int64         `yaml:"seed"`  // 0 = time-based
	Input       string        `yaml:"input"` // coordinate file; empty = random fill
}

// SaveConfig controls where the final generation is written.
type SaveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // empty = directory of the running executable
	File    string `yaml:"file"`
}

// RenderConfig holds terminal rendering settings.
type RenderConfig struct {
	Alive string `yaml:"alive"`
	Dead  string `yaml:"dead"`
	Color bool   `yaml:"color"`
	Clear bool   `yaml:"clear"`
}

// TelemetryConfig holds census logging settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // empty = disabled
}

// ViewerConfig holds GUI viewer settings.
type ViewerConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.World.Size < 1 {
		errs = append(errs, fmt.Errorf("world.size must be at least 1, got %d", c.World.Size))
	}
	if c.Run.Generations < 0 {
		errs = append(errs, fmt.Errorf("run.generations must not be negative, got %d", c.Run.Generations))
	}
	if c.Run.Delay < 0 {
		errs = append(errs, fmt.Errorf("run.delay must not be negative, got %s", c.Run.Delay))
	}
	if c.Save.Enabled && c.Save.File == "" {
		errs = append(errs, errors.New("save.file must be set when saving is enabled"))
	}
	if c.Render.Alive == "" || c.Render.Dead == "" {
		errs = append(errs, errors.New("render.alive and render.dead must not be empty"))
	}
	if c.Viewer.Scale < 1 {
		errs = append(errs, fmt.Errorf("viewer.scale must be at least 1, got %d", c.Viewer.Scale))
	}
	if c.Viewer.TPS < 1 {
		errs = append(errs, fmt.Errorf("viewer.tps must be at least 1, got %d", c.Viewer.TPS))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// SavePath resolves the destination of the final generation. A relative or
// empty Save.Dir is resolved against the directory of the running executable.
func (c *Config) SavePath() (string, error) {
	dir := c.Save.Dir
	if !filepath.IsAbs(dir) {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locating executable: %w", err)
		}
		dir = filepath.Join(filepath.Dir(exe), dir)
	}
	return filepath.Join(dir, c.Save.File), nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
