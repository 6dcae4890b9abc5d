// Package metropolis defines model parameters, sampling options, sentinel
// errors, and the Result aggregate for the Monte Carlo driver.
package metropolis

import (
	"errors"

	"github.com/gharib85/isinglab/observable"
)

// Sentinel errors for kernel and sampler operations.
var (
	// ErrInvalidTemperature indicates T ≤ 0 or NaN; β = 1/T must be well-defined.
	ErrInvalidTemperature = errors.New("metropolis: temperature must be strictly positive")
	// ErrInvalidIterations indicates a sample count below 1.
	ErrInvalidIterations = errors.New("metropolis: iterations must be at least 1")
	// ErrInvalidThermSteps indicates a negative thermalization step count.
	ErrInvalidThermSteps = errors.New("metropolis: thermalization steps must be non-negative")
	// ErrNilLattice indicates a missing lattice.
	ErrNilLattice = errors.New("metropolis: nil lattice")
	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("metropolis: nil random source")
)

// Params bundles the model parameters of one update or sampling call:
// external field H, axis couplings Jx and Jy, and temperature T.
// It is an immutable value; sweep drivers construct a fresh Params per
// parameter point instead of mutating shared state.
type Params struct {
	H  float64 // external field
	Jx float64 // coupling along x (left/right bonds)
	Jy float64 // coupling along y (up/down bonds)
	T  float64 // temperature, strictly positive
}

// Validate rejects temperatures for which β = 1/T is not well-defined.
// The negated comparison also catches NaN.
func (p Params) Validate() error {
	if !(p.T > 0) {
		return ErrInvalidTemperature
	}

	return nil
}

// Beta returns 1/T. Call Validate first; Beta itself does not re-check.
func (p Params) Beta() float64 {
	return 1 / p.T
}

// Options configures one sampling run.
//
// Fields:
//   - Iterations     — number of measured samples (ensemble length), ≥ 1.
//   - ThermSteps     — initial burn-in sweeps before any measurement, ≥ 0.
//   - ThermPerSample — re-thermalization sweeps before each sample, ≥ 0;
//     one additional sweep is always applied right before measuring.
//   - Distance       — neighbor distance k of the measured correlation, ≥ 1.
//   - Mode           — disconnected or connected correlation.
type Options struct {
	Iterations     int
	ThermSteps     int
	ThermPerSample int
	Distance       int
	Mode           observable.Mode
}

// DefaultOptions returns the single-run settings of the reference
// simulation: 1000 samples, no initial burn-in, 10 re-thermalization sweeps
// per sample, nearest-neighbor disconnected correlation.
func DefaultOptions() Options {
	return Options{
		Iterations:     1000,
		ThermSteps:     0,
		ThermPerSample: 10,
		Distance:       1,
		Mode:           observable.Disconnected,
	}
}

// Validate checks every option bound. Exported so sweep drivers can reject
// a whole sweep before its first point mutates anything.
func (o Options) Validate() error {
	if o.Iterations < 1 {
		return ErrInvalidIterations
	}
	if o.ThermSteps < 0 || o.ThermPerSample < 0 {
		return ErrInvalidThermSteps
	}
	if o.Distance < 1 {
		return observable.ErrInvalidDistance
	}

	return o.Mode.Validate()
}

// Result aggregates one sampling run.
//
// M, E, G are ensemble means of the per-snapshot totals (net magnetization,
// once-per-bond net energy, correlation); MPerSite and EPerSite divide the
// respective mean by the site count. The raw per-iteration series are kept
// for downstream histogramming; each has length exactly Iterations.
// Accepted totals accepted flips over every sweep the run performed,
// burn-in included.
type Result struct {
	M, MPerSite float64
	E, EPerSite float64
	G           float64

	Susceptibility float64
	SpecificHeat   float64

	MSeries []float64
	ESeries []float64
	GSeries []float64

	Accepted int
}
