// Package observable evaluates thermodynamic quantities on one lattice
// snapshot: total and per-site magnetization, total and per-site energy, and
// the k-th nearest-neighbour two-point correlation function.
//
// What:
//
//   - Measure walks the grid once and accumulates
//     M = Σ s, E = Σ (−h·s − Jx·s·s_right − Jy·s·s_down), and the two-point
//     sum Σ (s·s_down_k + s·s_right_k) at neighbor distance k.
//   - Mode selects the disconnected correlation g = ⟨s_i·s_{i+k}⟩ or the
//     connected form g_c = g − m², with m the per-site magnetization.
//
// Why:
//
//   - The sampling driver needs one cheap scalar triple (M, E, G) per
//     measured sweep to build ensembles; everything here is a single O(N)
//     pass with no allocation beyond the returned Sample.
//
// Conventions (preserved deliberately):
//
//   - The energy sum visits only the right and down neighbor of each site,
//     counting each lattice bond exactly once. The update kernel's ΔE uses
//     all four neighbors of the flipped site; the two conventions answer
//     different questions (total energy vs. local field) and intentionally
//     do NOT share a neighbor set. Known quirk: with both couplings equal
//     this makes E the once-per-bond total, not the halved four-neighbor
//     textbook sum — downstream values match it exactly.
//   - The energy always uses nearest-neighbor (k=1) couplings even when the
//     correlation distance differs; k influences the correlation only.
//
// Errors:
//
//   - ErrInvalidDistance: neighbor distance below 1.
//   - ErrInvalidMode: a Mode value outside the declared enum.
//   - ErrNilLattice: no lattice to measure.
package observable
