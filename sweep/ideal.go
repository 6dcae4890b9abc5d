// Package sweep - closed-form reference values for the uncoupled model.
package sweep

import (
	"math"

	"github.com/gharib85/isinglab/metropolis"
)

// IdealZeroCoupling evaluates the exact solution of the uncoupled Ising
// model at temperature t and field h. With β = 1/t and x = β·h:
//
//	m   = tanh(x)
//	e   = −h·tanh(x)
//	χ   = β·sech²(x)
//	c_v = x²·sech²(x)
//
// All quantities are per site. Returns metropolis.ErrInvalidTemperature for
// t ≤ 0 or NaN. Complexity: O(1).
func IdealZeroCoupling(t, h float64) (Ideal, error) {
	if !(t > 0) {
		return Ideal{}, metropolis.ErrInvalidTemperature
	}

	beta := 1 / t
	x := beta * h
	m := math.Tanh(x)

	// −h·m is the negative zero at h = 0; report the canonical one.
	e := -h * m
	if e == 0 {
		e = 0
	}

	return Ideal{
		M:   m,
		E:   e,
		Chi: beta * sech2(x),
		Cv:  x * x * sech2(x),
	}, nil
}

// sech2 computes sech²(x) = 1/cosh²(x).
func sech2(x float64) float64 {
	c := math.Cosh(x)

	return 1 / (c * c)
}
