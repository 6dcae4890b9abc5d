// Package observable defines the correlation mode enum, sentinel errors, and
// the Sample value returned by Measure.
package observable

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for observable operations.
var (
	// ErrInvalidMode indicates a correlation mode outside the declared enum.
	ErrInvalidMode = errors.New("observable: correlation mode must be Disconnected or Connected")
	// ErrInvalidDistance indicates a neighbor distance below 1.
	ErrInvalidDistance = errors.New("observable: neighbor distance must be at least 1")
	// ErrNilLattice indicates a missing lattice.
	ErrNilLattice = errors.New("observable: nil lattice")
)

// Mode selects which two-point correlation function Measure reports.
//
//   - Disconnected — g = ⟨s_i·s_{i+k}⟩, the raw pair average.
//   - Connected    — g_c = g − m², the fluctuation part with the mean-field
//     background ⟨s_i⟩⟨s_{i+k}⟩ = m² subtracted.
//
// The zero value is Disconnected. Values outside the enum are rejected by
// Validate, so a malformed selector surfaces as an error instead of a
// silently wrong correlator.
type Mode int

const (
	// Disconnected reports the raw two-point average ⟨s_i·s_{i+k}⟩.
	Disconnected Mode = iota
	// Connected reports ⟨s_i·s_{i+k}⟩ − m².
	Connected
)

// Validate returns ErrInvalidMode for values outside the declared enum.
func (m Mode) Validate() error {
	switch m {
	case Disconnected, Connected:
		return nil
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidMode, int(m))
	}
}

// String implements fmt.Stringer for configuration echoing and table output.
func (m Mode) String() string {
	switch m {
	case Disconnected:
		return "disconnected"
	case Connected:
		return "connected"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps the textual form used by configuration files onto a Mode.
// Matching is case-insensitive; unknown text yields ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disconnected":
		return Disconnected, nil
	case "connected":
		return Connected, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidMode, s)
	}
}

// Sample holds every quantity measured on one lattice snapshot.
type Sample struct {
	// M is the total magnetization Σ s; MPerSite is M divided by the site count.
	M, MPerSite float64
	// E is the total energy with each bond counted once (right/down scan);
	// EPerSite is E divided by the site count.
	E, EPerSite float64
	// G is the k-th neighbor two-point correlation, disconnected or
	// connected according to the Mode passed to Measure.
	G float64
}
