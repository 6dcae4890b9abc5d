// Package observable computes magnetization, energy, and two-point
// correlations for a single Ising lattice snapshot.
package observable

import (
	"github.com/gharib85/isinglab/lattice"
)

// Measure evaluates the lattice under field h and couplings jx, jy, with the
// two-point correlation taken at neighbor distance dist in Mode mode.
//
// Accumulation per site (y, x), s the spin there, all neighbors wrapped:
//
//	M += s
//	E += −h·s − jx·s·At(y, x+1) − jy·s·At(y+1, x)
//	corr += s·At(y+dist, x) + s·At(y, x+dist)
//
// The energy scan covers right and down only, so each bond contributes
// exactly once; it keeps k=1 neighbors regardless of dist. See the package
// documentation for why both conventions are preserved as-is.
//
// Validation happens before the lattice is touched: ErrNilLattice,
// ErrInvalidDistance (dist < 1), ErrInvalidMode.
// Complexity: O(rows×cols) time, O(1) extra memory.
func Measure(l *lattice.Lattice, h, jx, jy float64, dist int, mode Mode) (Sample, error) {
	if l == nil {
		return Sample{}, ErrNilLattice
	}
	if dist < 1 {
		return Sample{}, ErrInvalidDistance
	}
	if err := mode.Validate(); err != nil {
		return Sample{}, err
	}

	rows, cols := l.Rows(), l.Cols()
	var m, e, corr float64
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s := float64(l.At(y, x))

			m += s

			e += -h * s
			e += -jx * float64(l.At(y, x+1)) * s
			e += -jy * float64(l.At(y+1, x)) * s

			corr += s * float64(l.At(y+dist, x))
			corr += s * float64(l.At(y, x+dist))
		}
	}

	n := float64(l.Sites())
	smp := Sample{
		M:        m,
		MPerSite: m / n,
		E:        e,
		EPerSite: e / n,
	}
	g := corr / n
	if mode == Connected {
		g -= smp.MPerSite * smp.MPerSite
	}
	smp.G = g

	return smp, nil
}
