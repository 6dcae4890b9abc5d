// Package lattice provides the toroidal spin grid mutated in place by the
// Metropolis update kernel and read by the observable calculator.
package lattice

import (
	"math/rand"
	"strings"
)

// New constructs a rows×cols lattice with every site drawn independently
// and uniformly from {−1, +1} using rng.
// Returns ErrBadDimensions if either dimension is below 1,
// ErrNilRand if rng is nil.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, rng *rand.Rand) (*Lattice, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	cells := make([]Spin, rows*cols)
	for i := range cells {
		cells[i] = Spin(2*rng.Intn(2) - 1)
	}

	return &Lattice{rows: rows, cols: cols, cells: cells}, nil
}

// From2D constructs a lattice from a non-empty rectangular grid of spins.
// The input is deep-copied.
// Returns ErrBadDimensions if the grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrInvalidSpin if any cell is not ±1.
// Complexity: O(rows×cols) time and memory.
func From2D(grid [][]Spin) (*Lattice, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrBadDimensions
	}
	rows, cols := len(grid), len(grid[0])
	cells := make([]Spin, 0, rows*cols)
	for _, row := range grid {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for _, s := range row {
			if !s.Valid() {
				return nil, ErrInvalidSpin
			}
			cells = append(cells, s)
		}
	}

	return &Lattice{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows (the Y dimension).
func (l *Lattice) Rows() int { return l.rows }

// Cols returns the number of columns (the X dimension).
func (l *Lattice) Cols() int { return l.cols }

// Sites returns the total number of sites, rows×cols.
func (l *Lattice) Sites() int { return l.rows * l.cols }

// At reads the spin at (y, x) with periodic wraparound. Any integers are
// accepted, including negative and far out-of-range values: At(−1, 0) is the
// last row, At(0, cols) the first column again.
// Complexity: O(1).
func (l *Lattice) At(y, x int) Spin {
	return l.cells[l.index(y, x)]
}

// Set writes s at (y, x) with the same wraparound as At.
// Returns ErrInvalidSpin if s is not ±1; the lattice is untouched then.
// Complexity: O(1).
func (l *Lattice) Set(y, x int, s Spin) error {
	if !s.Valid() {
		return ErrInvalidSpin
	}
	l.cells[l.index(y, x)] = s

	return nil
}

// Flip negates the spin at (y, x). Negation maps {−1,+1} onto itself, so
// closure holds without a validation branch.
// Complexity: O(1).
func (l *Lattice) Flip(y, x int) {
	i := l.index(y, x)
	l.cells[i] = -l.cells[i]
}

// Clone returns an independent deep copy of the lattice.
// Complexity: O(rows×cols).
func (l *Lattice) Clone() *Lattice {
	cells := make([]Spin, len(l.cells))
	copy(cells, l.cells)

	return &Lattice{rows: l.rows, cols: l.cols, cells: cells}
}

// Grid returns the cells as a fresh [][]Spin, one slice per row.
// Mutating the result does not affect the lattice.
// Complexity: O(rows×cols).
func (l *Lattice) Grid() [][]Spin {
	grid := make([][]Spin, l.rows)
	for y := 0; y < l.rows; y++ {
		row := make([]Spin, l.cols)
		copy(row, l.cells[y*l.cols:(y+1)*l.cols])
		grid[y] = row
	}

	return grid
}

// String renders the grid one row per line, sites as "+" or "-" joined by
// single spaces: the conventional terminal view of an Ising configuration.
func (l *Lattice) String() string {
	var b strings.Builder
	b.Grow(l.rows * (2*l.cols + 1))
	for y := 0; y < l.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < l.cols; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if l.cells[y*l.cols+x] == Up {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
		}
	}

	return b.String()
}

// index maps wrapped (y, x) to the row-major offset y*cols + x.
// Complexity: O(1).
func (l *Lattice) index(y, x int) int {
	return wrap(y, l.rows)*l.cols + wrap(x, l.cols)
}

// wrap reduces i modulo n into [0, n). Go's % truncates toward zero and
// yields negative remainders for negative i, so the result is shifted into
// range; this handles arbitrary offsets, not just ±1 neighbors.
func wrap(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}

	return m
}
