// Package stats summarizes latency samples.
//
// Percentiles use the nearest-rank method on the sorted sample set: the value
// for quantile q is the sample at index floor(n*q), with no interpolation.
// The maximum is always the last sample.
//
//	summary, err := stats.Summarize(samples)
//	if errors.Is(err, stats.ErrNoSamples) {
//	    ...
//	}
//	fmt.Printf("p50: %.3f\n", stats.Micros(summary.P50))
//
// Mean and standard deviation are derived from an HDR histogram and are
// accurate to three significant figures.
package stats
