// Package histogram implements the fixed-width reduction of measurement
// series. See doc.go for the contract.
package histogram

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// maxBins caps the edge-grid size so a width far below the sample range
// cannot allocate an absurd number of empty bins.
const maxBins = 1 << 24

// Reduce bins samples into a fixed-width histogram.
//
// Steps:
//
//  1. Validate width (> 0, finite) and the series (non-empty, all finite).
//  2. Round every sample half-to-even to the nearest integer.
//  3. Build left edges lo, lo+w, lo+2w, … where lo is the smallest rounded
//     sample, stopping at hi + w + 1 with hi the largest; the resulting grid
//     always extends strictly past hi.
//  4. Count rounded samples per half-open bin [edge, edge+w).
//
// The input slice is never reordered or modified. On success the returned
// Histogram satisfies Total() == len(samples).
func Reduce(samples []float64, width float64) (*Histogram, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBinWidth, width)
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	rounded := make([]float64, len(samples))
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: sample %d is %v", ErrNotFinite, i, v)
		}
		rounded[i] = math.RoundToEven(v)
	}

	lo := floats.Min(rounded)
	hi := floats.Max(rounded)
	if (hi-lo+width+1)/width > maxBins {
		return nil, fmt.Errorf("%w: width %v spans range [%v, %v] with more than %d bins",
			ErrInvalidBinWidth, width, lo, hi, maxBins)
	}

	// Left edges at lo + i·w, strictly below hi + w + 1. The stop bound
	// guarantees the final edge lies strictly above hi, so every rounded
	// sample falls inside a half-open bin.
	var edges []float64
	for i := 0; ; i++ {
		e := lo + float64(i)*width
		if !(e < hi+width+1) {
			break
		}
		edges = append(edges, e)
	}
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: width %v collapses range [%v, %v] to a single edge",
			ErrInvalidBinWidth, width, lo, hi)
	}

	sort.Float64s(rounded)
	counts := stat.Histogram(nil, edges, rounded, nil)

	return &Histogram{Edges: edges[:len(edges)-1], Counts: counts}, nil
}
