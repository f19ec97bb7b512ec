package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"lifeterm/internal/config"
)

// OutputManager writes per-generation census rows and run artefacts to a
// directory.
type OutputManager struct {
	dir           string
	censusFile    *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and opens census.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "census.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating census.csv: %w", err)
	}
	return &OutputManager{dir: dir, censusFile: f}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteCensus appends a record to census.csv.
func (om *OutputManager) WriteCensus(r CensusRecord) error {
	if om == nil {
		return nil
	}

	records := []CensusRecord{r}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.censusFile); err != nil {
			return fmt.Errorf("writing census: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.censusFile); err != nil {
		return fmt.Errorf("writing census: %w", err)
	}
	return nil
}

// WriteSummary writes summary.csv.
func (om *OutputManager) WriteSummary(s Summary) error {
	if om == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(om.dir, "summary.csv"))
	if err != nil {
		return fmt.Errorf("creating summary.csv: %w", err)
	}
	defer f.Close()
	if err := gocsv.Marshal([]Summary{s}, f); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return f.Close()
}

// Close closes census.csv.
func (om *OutputManager) Close() error {
	if om == nil || om.censusFile == nil {
		return nil
	}
	return om.censusFile.Close()
}
