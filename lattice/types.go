// Package lattice defines the spin type, sentinel errors, and the Lattice
// container for the isinglab module.
package lattice

import (
	"errors"
)

// Spin is a two-state Ising spin. Only Up (+1) and Down (−1) are valid;
// every exported mutator rejects anything else.
type Spin int8

const (
	// Up is the spin-up state, +1.
	Up Spin = 1
	// Down is the spin-down state, −1.
	Down Spin = -1
)

// Sentinel errors for lattice operations.
var (
	// ErrBadDimensions indicates rows or cols below 1, or an empty input grid.
	ErrBadDimensions = errors.New("lattice: rows and cols must be at least 1")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("lattice: all rows must have the same length")
	// ErrInvalidSpin indicates a value other than +1 or −1.
	ErrInvalidSpin = errors.New("lattice: spin must be +1 or -1")
	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("lattice: nil random source")
)

// Valid reports whether s is one of the two admissible spin states.
func (s Spin) Valid() bool {
	return s == Up || s == Down
}

// Lattice is a rows×cols toroidal grid of Spin. Dimensions are fixed at
// construction and cells are reachable only through wrapping accessors, so
// the ±1 closure invariant cannot be broken from outside the package.
type Lattice struct {
	rows, cols int
	cells      []Spin // row-major, length rows*cols
}
