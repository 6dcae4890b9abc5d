// Package histogram defines the sentinel errors and the Histogram value
// returned by Reduce.
package histogram

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for histogram reduction.
var (
	// ErrInvalidBinWidth indicates a bin width that is not positive, not
	// finite, or incompatible with the sample range.
	ErrInvalidBinWidth = errors.New("histogram: bin width must be positive and finite")
	// ErrNoSamples indicates an empty input series.
	ErrNoSamples = errors.New("histogram: no samples")
	// ErrNotFinite indicates a NaN or infinite sample value.
	ErrNotFinite = errors.New("histogram: sample is not finite")
)

// Histogram is a fixed-width binning of one measurement series.
//
// Edges and Counts always have equal length: Edges[i] is the left edge of
// bin i, and Counts[i] is the number of rounded samples in
// [Edges[i], Edges[i]+width). Bins are contiguous, so Edges[i+1]−Edges[i]
// equals the width passed to Reduce.
type Histogram struct {
	// Edges holds the left edge of each bin in ascending order.
	Edges []float64
	// Counts holds the per-bin sample counts.
	Counts []float64
}

// Bins reports the number of bins.
func (h *Histogram) Bins() int {
	return len(h.Counts)
}

// Total reports the summed count over all bins. Reduce constructs the edge
// grid to cover every rounded sample, so Total equals the input length.
func (h *Histogram) Total() float64 {
	return floats.Sum(h.Counts)
}
