package stats

import (
	"errors"
	"slices"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// ErrNoSamples is returned when there is nothing to summarize.
var ErrNoSamples = errors.New("no samples collected")

const (
	// Histogram range in nanoseconds: 1ns to 1 hour.
	histogramMin     = 1
	histogramMax     = int64(time.Hour)
	histogramSigFigs = 3
)

// Summary contains the percentile points of a sample set.
type Summary struct {
	P00  time.Duration `json:"p00"`
	P25  time.Duration `json:"p25"`
	P50  time.Duration `json:"p50"`
	P75  time.Duration `json:"p75"`
	P100 time.Duration `json:"p100"`

	// Mean and StdDev are histogram estimates, not exact values.
	Mean   time.Duration `json:"mean"`
	StdDev time.Duration `json:"stdDev"`

	Count int `json:"count"`
}

// Summarize sorts a copy of samples and computes its percentile points.
func Summarize(samples []time.Duration) (*Summary, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrNoSamples
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
	for _, s := range sorted {
		hist.RecordValue(clamp(int64(s)))
	}

	return &Summary{
		P00:    sorted[0],
		P25:    sorted[n/4],
		P50:    sorted[n/2],
		P75:    sorted[3*n/4],
		P100:   sorted[n-1],
		Mean:   time.Duration(hist.Mean()),
		StdDev: time.Duration(hist.StdDev()),
		Count:  n,
	}, nil
}

// Micros converts a duration to fractional microseconds.
func Micros(d time.Duration) float64 {
	return float64(d) / 1e3
}

// clamp keeps a value within the recordable histogram range.
func clamp(v int64) int64 {
	if v < histogramMin {
		return histogramMin
	}
	if v > histogramMax {
		return histogramMax
	}
	return v
}
