package stats

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestSummarize_HandPicked(t *testing.T) {
	samples := []time.Duration{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	summary, err := Summarize(samples)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"p00", summary.P00, 10},
		{"p25", summary.P25, 30},
		{"p50", summary.P50, 60},
		{"p75", summary.P75, 80},
		{"p100", summary.P100, 100},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
		}
	}

	if summary.Count != 10 {
		t.Errorf("Count = %d, want 10", summary.Count)
	}
}

func TestSummarize_Unsorted(t *testing.T) {
	samples := []time.Duration{100, 10, 90, 20, 80, 30, 70, 40, 60, 50}
	before := append([]time.Duration(nil), samples...)

	summary, err := Summarize(samples)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary.P00 != 10 || summary.P25 != 30 || summary.P50 != 60 || summary.P75 != 80 || summary.P100 != 100 {
		t.Errorf("Summarize() = %+v, want 10/30/60/80/100", summary)
	}

	for i := range samples {
		if samples[i] != before[i] {
			t.Fatalf("input modified at %d: %v, want %v", i, samples[i], before[i])
		}
	}
}

func TestSummarize_Indices(t *testing.T) {
	tests := []struct {
		n                   int
		p25, p50, p75, p100 int
	}{
		{1, 0, 0, 0, 0},
		{2, 0, 1, 1, 1},
		{3, 0, 1, 2, 2},
		{4, 1, 2, 3, 3},
		{5, 1, 2, 3, 4},
		{7, 1, 3, 5, 6},
		{1000, 250, 500, 750, 999},
	}

	for _, tt := range tests {
		// samples[i] == i, so each percentile equals its index
		samples := make([]time.Duration, tt.n)
		for i := range samples {
			samples[i] = time.Duration(i)
		}

		summary, err := Summarize(samples)
		if err != nil {
			t.Fatalf("n=%d: Summarize() error = %v", tt.n, err)
		}
		if summary.P00 != 0 {
			t.Errorf("n=%d: P00 = %d, want 0", tt.n, summary.P00)
		}
		if int(summary.P25) != tt.p25 {
			t.Errorf("n=%d: P25 = %d, want %d", tt.n, summary.P25, tt.p25)
		}
		if int(summary.P50) != tt.p50 {
			t.Errorf("n=%d: P50 = %d, want %d", tt.n, summary.P50, tt.p50)
		}
		if int(summary.P75) != tt.p75 {
			t.Errorf("n=%d: P75 = %d, want %d", tt.n, summary.P75, tt.p75)
		}
		if int(summary.P100) != tt.p100 {
			t.Errorf("n=%d: P100 = %d, want %d", tt.n, summary.P100, tt.p100)
		}
	}
}

func TestSummarize_Ordered(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		samples := make([]time.Duration, 1+r.Intn(500))
		for i := range samples {
			samples[i] = time.Duration(r.Int63n(int64(time.Second)))
		}

		s, err := Summarize(samples)
		if err != nil {
			t.Fatalf("Summarize() error = %v", err)
		}
		if !(s.P00 <= s.P25 && s.P25 <= s.P50 && s.P50 <= s.P75 && s.P75 <= s.P100) {
			t.Errorf("percentiles not ordered: %+v", s)
		}
	}
}

func TestSummarize_Empty(t *testing.T) {
	for _, samples := range [][]time.Duration{nil, {}} {
		summary, err := Summarize(samples)
		if !errors.Is(err, ErrNoSamples) {
			t.Errorf("Summarize(%v) error = %v, want %v", samples, err, ErrNoSamples)
		}
		if summary != nil {
			t.Errorf("Summarize(%v) = %+v, want nil", samples, summary)
		}
	}
}

func TestSummarize_Mean(t *testing.T) {
	samples := []time.Duration{
		10 * time.Microsecond,
		20 * time.Microsecond,
		30 * time.Microsecond,
		40 * time.Microsecond,
	}

	summary, err := Summarize(samples)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	// HDR histogram binning allows a small relative error
	if summary.Mean < 24900*time.Nanosecond || summary.Mean > 25100*time.Nanosecond {
		t.Errorf("Mean = %v, want ~25µs", summary.Mean)
	}
	if summary.StdDev <= 0 {
		t.Errorf("StdDev = %v, want > 0", summary.StdDev)
	}
}

func TestSummarize_ZeroDurations(t *testing.T) {
	summary, err := Summarize([]time.Duration{0, 0, 0})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.P00 != 0 || summary.P100 != 0 {
		t.Errorf("Summarize() = %+v, want all zero percentiles", summary)
	}
}

func TestMicros(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected float64
	}{
		{0, 0},
		{1, 0.001},
		{1500, 1.5},
		{time.Millisecond, 1000},
	}

	for _, tt := range tests {
		result := Micros(tt.duration)
		if result != tt.expected {
			t.Errorf("Micros(%v) = %v, want %v", tt.duration, result, tt.expected)
		}
	}
}
