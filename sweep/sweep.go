// Package sweep - sweep drivers over linear parameter grids.
package sweep

import (
	"fmt"
	"math/rand"

	"github.com/gharib85/isinglab/lattice"
	"github.com/gharib85/isinglab/metropolis"
)

// NearestNeighbor sweeps the coupled model: temperature, field, and both
// couplings interpolate together across cfg.Points+1 tuples, and the sampler
// runs at each one. The same lattice evolves through every point.
//
// The whole sweep is validated before the first point mutates anything; on
// success the returned slice has exactly cfg.Points+1 entries in grid order.
// Complexity: O(points × sampler cost).
func NearestNeighbor(l *lattice.Lattice, cfg Config, rng *rand.Rand) ([]Point, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	tGrid, hGrid, jxGrid, jyGrid, err := paramGrids(cfg)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(tGrid))
	for i := range tGrid {
		p := metropolis.Params{H: hGrid[i], Jx: jxGrid[i], Jy: jyGrid[i], T: tGrid[i]}
		res, err := metropolis.Run(l, p, cfg.Sampling, rng)
		if err != nil {
			return nil, fmt.Errorf("sweep: point %d: %w", i, err)
		}
		points[i] = Point{T: p.T, H: p.H, Jx: p.Jx, Jy: p.Jy, Result: res}
	}

	return points, nil
}

// ZeroCoupling sweeps the uncoupled model: Jx = Jy = 0 regardless of the
// coupling ranges, (T, h) interpolating over cfg.Points+1 tuples. Each point
// carries the simulated statistics, the closed-form ideal values, and the
// residual ideal − simulated (per-site quantities throughout).
// Complexity: O(points × sampler cost).
func ZeroCoupling(l *lattice.Lattice, cfg Config, rng *rand.Rand) ([]ZeroCouplingPoint, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	tGrid, hGrid, _, _, err := paramGrids(cfg)
	if err != nil {
		return nil, err
	}

	points := make([]ZeroCouplingPoint, len(tGrid))
	for i := range tGrid {
		p := metropolis.Params{H: hGrid[i], T: tGrid[i]}
		res, err := metropolis.Run(l, p, cfg.Sampling, rng)
		if err != nil {
			return nil, fmt.Errorf("sweep: point %d: %w", i, err)
		}
		ideal, err := IdealZeroCoupling(p.T, p.H)
		if err != nil {
			return nil, fmt.Errorf("sweep: point %d: %w", i, err)
		}
		points[i] = ZeroCouplingPoint{
			T:      p.T,
			H:      p.H,
			Result: res,
			Ideal:  ideal,
			Residual: Ideal{
				M:   ideal.M - res.MPerSite,
				E:   ideal.E - res.EPerSite,
				Chi: ideal.Chi - res.Susceptibility,
				Cv:  ideal.Cv - res.SpecificHeat,
			},
		}
	}

	return points, nil
}

// paramGrids expands all four ranges and pre-validates the sweep: sampler
// options first, then every temperature value (strictly positive, NaN
// rejected). A bad point fails the whole sweep before any state changes.
func paramGrids(cfg Config) (tGrid, hGrid, jxGrid, jyGrid []float64, err error) {
	if err = cfg.Sampling.Validate(); err != nil {
		return nil, nil, nil, nil, err
	}
	if tGrid, err = cfg.Temperature.Grid(cfg.Points); err != nil {
		return nil, nil, nil, nil, err
	}
	if hGrid, err = cfg.Field.Grid(cfg.Points); err != nil {
		return nil, nil, nil, nil, err
	}
	if jxGrid, err = cfg.CouplingX.Grid(cfg.Points); err != nil {
		return nil, nil, nil, nil, err
	}
	if jyGrid, err = cfg.CouplingY.Grid(cfg.Points); err != nil {
		return nil, nil, nil, nil, err
	}
	for i, t := range tGrid {
		if !(t > 0) {
			return nil, nil, nil, nil, fmt.Errorf("sweep: point %d: temperature %v: %w", i, t, metropolis.ErrInvalidTemperature)
		}
	}

	return tGrid, hGrid, jxGrid, jyGrid, nil
}
