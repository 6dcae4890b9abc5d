// Package lattice models a fixed-size two-dimensional grid of Ising spins
// with periodic boundary conditions (a torus).
//
// What:
//
//   - Spin is a two-state value constrained to exactly {−1, +1}.
//   - Lattice owns a rows×cols grid of Spin with a flat row-major backing.
//   - At/Set wrap ANY integer index modulo the respective dimension, so
//     neighbor queries never need bounds checks: At(y−1, x), At(y, x+k) and
//     even At(−7, 10*cols) are all valid.
//   - New fills every site with an independent unbiased ±1 draw from an
//     injected random source; From2D adopts a caller-provided grid after
//     validation, deep-copying it.
//
// Why:
//
//   - Metropolis Monte Carlo mutates one shared grid in place, site by site;
//     a dedicated container keeps the ±1 closure invariant structural
//     (dimensions and cells are private, every mutator validates).
//   - Toroidal wraparound is the standard way to remove edge effects from a
//     finite spin system.
//
// Complexity:
//
//   - At/Set/Flip: O(1).
//   - New/From2D/Clone/Grid/String: O(rows×cols).
//
// Errors:
//
//   - ErrBadDimensions: rows or cols below 1, or an empty input grid.
//   - ErrNonRectangular: input rows of differing lengths.
//   - ErrInvalidSpin: a value other than +1/−1 offered to Set or From2D.
//   - ErrNilRand: New called without a random source.
package lattice
