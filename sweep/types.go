// Package sweep defines the parameter ranges, sweep configuration, sentinel
// errors, and per-point result records.
package sweep

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/gharib85/isinglab/metropolis"
)

// Sentinel errors for sweep operations.
var (
	// ErrInvalidPoints indicates a negative sweep point count.
	ErrInvalidPoints = errors.New("sweep: points must be non-negative")
	// ErrNilLattice indicates a missing lattice.
	ErrNilLattice = errors.New("sweep: nil lattice")
	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("sweep: nil random source")
)

// Range is a closed interval swept linearly. Start == End pins the
// parameter constant across all points.
type Range struct {
	Start, End float64
}

// Grid expands the range into points+1 inclusive values
// Start + i·(End−Start)/points, the last exactly End.
// points == 0 yields the single value Start; points < 0 is ErrInvalidPoints.
// Complexity: O(points).
func (r Range) Grid(points int) ([]float64, error) {
	if points < 0 {
		return nil, ErrInvalidPoints
	}
	if points == 0 {
		return []float64{r.Start}, nil
	}

	return floats.Span(make([]float64, points+1), r.Start, r.End), nil
}

// Config carries every tunable of one sweep: the four parameter ranges, the
// number of interpolation steps, and the sampling options applied at each
// point. It is a plain immutable value; no global state backs it.
type Config struct {
	Temperature Range
	Field       Range
	CouplingX   Range
	CouplingY   Range

	// Points is the number of interpolation steps; every sweep visits
	// Points+1 parameter tuples.
	Points int

	// Sampling configures the sampler run executed at each point.
	Sampling metropolis.Options
}

// DefaultConfig returns the reference simulation's sweep: temperature from
// 0.1 to 5.1 over 50 steps, zero field, unit couplings held constant, and
// the default sampling options.
func DefaultConfig() Config {
	return Config{
		Temperature: Range{Start: 0.1, End: 5.1},
		Field:       Range{Start: 0, End: 0},
		CouplingX:   Range{Start: 1, End: 1},
		CouplingY:   Range{Start: 1, End: 1},
		Points:      50,
		Sampling:    metropolis.DefaultOptions(),
	}
}

// Point is one general-coupling sweep point: the parameter tuple it ran
// under and the reduced ensemble statistics.
type Point struct {
	T, H, Jx, Jy float64
	Result       metropolis.Result
}

// Ideal holds the closed-form zero-coupling values, per site: magnetization,
// energy, susceptibility, and specific heat. Residual reuses the same shape.
type Ideal struct {
	M   float64
	E   float64
	Chi float64
	Cv  float64
}

// ZeroCouplingPoint is one uncoupled sweep point: simulated statistics plus
// the closed-form values and the residual (ideal − simulated) per quantity.
type ZeroCouplingPoint struct {
	T, H     float64
	Result   metropolis.Result
	Ideal    Ideal
	Residual Ideal
}
