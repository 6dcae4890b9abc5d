package metropolis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gharib85/isinglab/lattice"
	"github.com/gharib85/isinglab/metropolis"
)

// allUp builds a rows×cols lattice with every spin +1.
func allUp(t *testing.T, rows, cols int) *lattice.Lattice {
	t.Helper()
	grid := make([][]lattice.Spin, rows)
	for y := range grid {
		row := make([]lattice.Spin, cols)
		for x := range row {
			row[x] = lattice.Up
		}
		grid[y] = row
	}
	l, err := lattice.From2D(grid)
	require.NoError(t, err)
	return l
}

// TestSweep_Validation checks every rejection path and that a failed call
// leaves the lattice untouched.
func TestSweep_Validation(t *testing.T) {
	l := allUp(t, 3, 3)
	before := l.Grid()
	rng := metropolis.NewRNG(5)

	_, err := metropolis.Sweep(nil, metropolis.Params{T: 1}, rng)
	assert.ErrorIs(t, err, metropolis.ErrNilLattice)

	_, err = metropolis.Sweep(l, metropolis.Params{T: 1}, nil)
	assert.ErrorIs(t, err, metropolis.ErrNilRand)

	for _, temp := range []float64{0, -1, math.NaN()} {
		_, err = metropolis.Sweep(l, metropolis.Params{T: temp}, rng)
		assert.ErrorIs(t, err, metropolis.ErrInvalidTemperature, "T = %v", temp)
	}

	assert.Equal(t, before, l.Grid(), "rejected calls must not mutate the lattice")
}

// TestSweep_ClosureAfterManySweeps checks that spins stay in {−1,+1} after
// a long run near the critical temperature.
func TestSweep_ClosureAfterManySweeps(t *testing.T) {
	rng := metropolis.NewRNG(11)
	l, err := lattice.New(12, 12, rng)
	require.NoError(t, err)

	p := metropolis.Params{Jx: 1, Jy: 1, T: 2.3}
	for i := 0; i < 200; i++ {
		_, err = metropolis.Sweep(l, p, rng)
		require.NoError(t, err)
	}
	for y := 0; y < l.Rows(); y++ {
		for x := 0; x < l.Cols(); x++ {
			require.True(t, l.At(y, x).Valid(), "site (%d,%d) corrupted", y, x)
		}
	}
}

// TestSweep_DeterministicTrajectory checks the bit-for-bit reproducibility
// contract: same seed, same parameters, same trajectory and flip count.
func TestSweep_DeterministicTrajectory(t *testing.T) {
	p := metropolis.Params{H: 0.2, Jx: 1, Jy: 0.5, T: 1.8}

	run := func() ([][]lattice.Spin, int) {
		rng := metropolis.NewRNG(77)
		l, err := lattice.New(8, 8, rng)
		require.NoError(t, err)
		total := 0
		for i := 0; i < 25; i++ {
			acc, err := metropolis.Sweep(l, p, rng)
			require.NoError(t, err)
			total += acc
		}
		return l.Grid(), total
	}

	gridA, accA := run()
	gridB, accB := run()
	assert.Equal(t, gridA, gridB)
	assert.Equal(t, accA, accB)
}

// TestSweep_AlwaysFlipsWhenEnergyDrops drives ΔE < 0 at every site: an
// all-up grid in a strong negative field with couplings off. exp(−2βΔE) > 1
// there, so the u-comparison accepts unconditionally.
func TestSweep_AlwaysFlipsWhenEnergyDrops(t *testing.T) {
	l := allUp(t, 4, 4)
	p := metropolis.Params{H: -1000, T: 1}

	accepted, err := metropolis.Sweep(l, p, metropolis.NewRNG(3))
	require.NoError(t, err)
	assert.Equal(t, l.Sites(), accepted, "every site must flip")
	for y := 0; y < l.Rows(); y++ {
		for x := 0; x < l.Cols(); x++ {
			assert.Equal(t, lattice.Down, l.At(y, x))
		}
	}
}

// TestSweep_FrozenUnderStrongAlignedField drives exp(−2βΔE) to exactly 0
// (underflow), so no draw can accept: the configuration is frozen.
func TestSweep_FrozenUnderStrongAlignedField(t *testing.T) {
	l := allUp(t, 4, 4)
	before := l.Grid()
	p := metropolis.Params{H: 1000, T: 0.01}

	accepted, err := metropolis.Sweep(l, p, metropolis.NewRNG(3))
	require.NoError(t, err)
	assert.Zero(t, accepted)
	assert.Equal(t, before, l.Grid())
}

// TestSweep_InfiniteTemperatureAcceptsEverything checks the β → 0 limit:
// acceptance probability → 1 for every site regardless of ΔE, and many
// sweeps leave the grid near a 50/50 up-down mix.
func TestSweep_InfiniteTemperatureAcceptsEverything(t *testing.T) {
	rng := metropolis.NewRNG(29)
	l, err := lattice.New(16, 16, rng)
	require.NoError(t, err)

	p := metropolis.Params{Jx: 1, Jy: 1, T: 1e12}
	const sweeps = 10
	total := 0
	for i := 0; i < sweeps; i++ {
		acc, err := metropolis.Sweep(l, p, rng)
		require.NoError(t, err)
		total += acc
	}

	decisions := sweeps * l.Sites()
	assert.GreaterOrEqual(t, float64(total)/float64(decisions), 0.999,
		"acceptance rate must approach 1 as β → 0")

	up := 0
	for y := 0; y < l.Rows(); y++ {
		for x := 0; x < l.Cols(); x++ {
			if l.At(y, x) == lattice.Up {
				up++
			}
		}
	}
	frac := float64(up) / float64(l.Sites())
	assert.Greater(t, frac, 0.35, "up fraction far below the 50/50 mix")
	assert.Less(t, frac, 0.65, "up fraction far above the 50/50 mix")
}

// TestSweep_SingleSiteLattice covers the degenerate 1×1 torus where every
// neighbor wraps onto the site itself.
func TestSweep_SingleSiteLattice(t *testing.T) {
	l, err := lattice.From2D([][]lattice.Spin{{1}})
	require.NoError(t, err)
	rng := metropolis.NewRNG(13)

	for i := 0; i < 50; i++ {
		_, err = metropolis.Sweep(l, metropolis.Params{H: 0.3, Jx: 1, Jy: 1, T: 2}, rng)
		require.NoError(t, err)
	}
	assert.True(t, l.At(0, 0).Valid())
}

// TestThermalize_Validation covers the step bound and the zero-step no-op.
func TestThermalize_Validation(t *testing.T) {
	l := allUp(t, 3, 3)
	rng := metropolis.NewRNG(5)
	p := metropolis.Params{Jx: 1, Jy: 1, T: 2}

	_, err := metropolis.Thermalize(l, p, -1, rng)
	assert.ErrorIs(t, err, metropolis.ErrInvalidThermSteps)

	before := l.Grid()
	accepted, err := metropolis.Thermalize(l, p, 0, rng)
	require.NoError(t, err)
	assert.Zero(t, accepted)
	assert.Equal(t, before, l.Grid(), "zero steps must not touch the lattice")
}

// TestThermalize_MatchesManualSweeps checks that Thermalize(n) consumes the
// stream exactly like n explicit Sweep calls.
func TestThermalize_MatchesManualSweeps(t *testing.T) {
	p := metropolis.Params{Jx: 1, Jy: 1, T: 2.5}

	rngA := metropolis.NewRNG(21)
	latA, err := lattice.New(6, 6, rngA)
	require.NoError(t, err)
	accA, err := metropolis.Thermalize(latA, p, 7, rngA)
	require.NoError(t, err)

	rngB := metropolis.NewRNG(21)
	latB, err := lattice.New(6, 6, rngB)
	require.NoError(t, err)
	accB := 0
	for i := 0; i < 7; i++ {
		acc, err := metropolis.Sweep(latB, p, rngB)
		require.NoError(t, err)
		accB += acc
	}

	assert.Equal(t, latA.Grid(), latB.Grid())
	assert.Equal(t, accA, accB)
}
