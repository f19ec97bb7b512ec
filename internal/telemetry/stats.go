package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CensusRecord is one row of census.csv.
type CensusRecord struct {
	Generation int `csv:"generation"`
	Population int `csv:"population"`
	Births     int `csv:"births"`
	Deaths     int `csv:"deaths"`
}

// Summary aggregates population statistics over a whole run.
type Summary struct {
	Generations int     `csv:"generations"`
	Initial     int     `csv:"initial"`
	Final       int     `csv:"final"`
	Min         int     `csv:"min"`
	Max         int     `csv:"max"`
	PeakAt      int     `csv:"peak_generation"`
	Mean        float64 `csv:"mean"`
	StdDev      float64 `csv:"stddev"`
	Births      int     `csv:"births"`
	Deaths      int     `csv:"deaths"`
}

// Collector accumulates census records for the run summary.
type Collector struct {
	populations []float64
	births      int
	deaths      int
	last        int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record adds one generation's census.
func (c *Collector) Record(r CensusRecord) {
	c.populations = append(c.populations, float64(r.Population))
	c.births += r.Births
	c.deaths += r.Deaths
	c.last = r.Generation
}

// Summary computes statistics over every recorded generation. The zero
// Summary is returned when nothing has been recorded.
func (c *Collector) Summary() Summary {
	n := len(c.populations)
	if n == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(c.populations, nil)
	if n == 1 {
		std = 0
	}
	return Summary{
		Generations: c.last,
		Initial:     int(c.populations[0]),
		Final:       int(c.populations[n-1]),
		Min:         int(floats.Min(c.populations)),
		Max:         int(floats.Max(c.populations)),
		PeakAt:      floats.MaxIdx(c.populations),
		Mean:        mean,
		StdDev:      std,
		Births:      c.births,
		Deaths:      c.deaths,
	}
}
