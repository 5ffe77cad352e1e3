// Package output writes leveled log lines and benchmark reports.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/wesleyorama2/fslat/internal/bench"
	"github.com/wesleyorama2/fslat/internal/stats"
)

// Logger writes INFO and ERROR lines to a single writer.
type Logger struct {
	w      io.Writer
	scheme *ColorScheme
}

// NewLogger creates a logger writing to w. Colors are used only when w is a
// terminal, the environment allows it, and noColor is false.
func NewLogger(w io.Writer, noColor bool) *Logger {
	if w == nil {
		w = os.Stderr
	}

	scheme := NoColorScheme()
	if UseColors(w, noColor) {
		scheme = forcedColorScheme()
	}

	return &Logger{w: w, scheme: scheme}
}

// Infof logs an informational line.
func (l *Logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "%s %s\n", l.scheme.Info.Sprint("INFO"), fmt.Sprintf(format, args...))
}

// Errorf logs an error line.
func (l *Logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "%s %s\n", l.scheme.Error.Sprint("ERROR"), fmt.Sprintf(format, args...))
}

// Config logs the parameters of a write benchmark run.
func (l *Logger) Config(fileSize, numSamples int) {
	l.Infof("Benchmarking file writes: size=%s, n=%s",
		l.scheme.Highlight.Sprint(fileSize),
		l.scheme.Highlight.Sprint(numSamples))
}

// Percentiles logs the percentile points of summary in microseconds.
func (l *Logger) Percentiles(summary *stats.Summary) {
	l.Infof("Percentiles (usec)")
	points := []struct {
		label string
		value float64
	}{
		{" p00", stats.Micros(summary.P00)},
		{" p25", stats.Micros(summary.P25)},
		{" p50", stats.Micros(summary.P50)},
		{" p75", stats.Micros(summary.P75)},
		{"p100", stats.Micros(summary.P100)},
	}
	for _, p := range points {
		l.Infof("%s: %.3f", l.scheme.Label.Sprint(p.label), p.value)
	}
}

// Distribution logs the histogram mean and standard deviation of summary.
func (l *Logger) Distribution(summary *stats.Summary) {
	l.Infof("%s: %.3f usec, %s: %.3f usec (%d samples)",
		l.scheme.Label.Sprint("mean"), stats.Micros(summary.Mean),
		l.scheme.Label.Sprint("stddev"), stats.Micros(summary.StdDev),
		summary.Count)
}

// ReadResult logs the outcome of a read benchmark.
func (l *Logger) ReadResult(r *bench.ReadResult) {
	l.Infof("Token signature: %s", l.scheme.Highlight.Sprint(r.Token))
	l.Infof("Read %d bytes from %s in %s", r.Bytes, r.Path, r.Elapsed)
	if secs := r.Elapsed.Seconds(); secs > 0 {
		l.Infof("Throughput: %.2f MiB/s", float64(r.Bytes)/(1<<20)/secs)
	}
}
