package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifeterm/internal/config"
)

func TestSummary(t *testing.T) {
	c := NewCollector()
	pops := []int{4, 8, 6, 2}
	for gen, p := range pops {
		c.Record(CensusRecord{Generation: gen, Population: p, Births: 1, Deaths: 2})
	}
	s := c.Summary()

	if s.Generations != 3 || s.Initial != 4 || s.Final != 2 {
		t.Errorf("summary = %+v", s)
	}
	if s.Min != 2 || s.Max != 8 || s.PeakAt != 1 {
		t.Errorf("min/max/peak = %d/%d/%d, want 2/8/1", s.Min, s.Max, s.PeakAt)
	}
	if math.Abs(s.Mean-5) > 1e-9 {
		t.Errorf("mean = %v, want 5", s.Mean)
	}
	// Sample standard deviation of {4, 8, 6, 2}.
	if want := math.Sqrt(20.0 / 3.0); math.Abs(s.StdDev-want) > 1e-9 {
		t.Errorf("stddev = %v, want %v", s.StdDev, want)
	}
	if s.Births != 4 || s.Deaths != 8 {
		t.Errorf("births/deaths = %d/%d, want 4/8", s.Births, s.Deaths)
	}
}

func TestSummaryEdgeCases(t *testing.T) {
	if s := NewCollector().Summary(); s != (Summary{}) {
		t.Fatalf("empty summary = %+v", s)
	}
	c := NewCollector()
	c.Record(CensusRecord{Population: 7})
	s := c.Summary()
	if s.StdDev != 0 || s.Mean != 7 {
		t.Fatalf("single-sample summary = %+v", s)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	if err := om.WriteCensus(CensusRecord{}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteSummary(Summary{}); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	for gen := 0; gen < 3; gen++ {
		if err := om.WriteCensus(CensusRecord{Generation: gen, Population: 10 - gen}); err != nil {
			t.Fatalf("WriteCensus: %v", err)
		}
	}
	if err := om.WriteSummary(Summary{Generations: 2, Final: 8}); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "census.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("census.csv has %d lines, want header + 3:\n%s", len(lines), data)
	}
	if lines[0] != "generation,population,births,deaths" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[3] != "2,8,0,0" {
		t.Errorf("last row = %q", lines[3])
	}

	summary, err := os.ReadFile(filepath.Join(dir, "summary.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(summary), "generations,initial,final,") {
		t.Errorf("summary.csv = %q", summary)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}
