// Package render defines the sentinel errors shared by the table and chart
// helpers.
package render

import "errors"

// Sentinel errors for rendering operations.
var (
	// ErrNilHistogram indicates a nil or empty histogram.
	ErrNilHistogram = errors.New("render: nil or empty histogram")
	// ErrSeriesMismatch indicates x and y series of different lengths.
	ErrSeriesMismatch = errors.New("render: x and y series lengths differ")
	// ErrTooFewPoints indicates a chart series with fewer than two points.
	ErrTooFewPoints = errors.New("render: need at least two points")
)
