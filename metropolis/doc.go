// Package metropolis implements the single-spin-flip Metropolis-Hastings
// update kernel for the 2D Ising model and the thermalization/sampling
// driver that reduces measured ensembles to thermodynamic statistics.
//
// What:
//
//   - Sweep applies one full lattice pass in row-major order with
//     immediate-update semantics: each site decision sees neighbor values as
//     they are RIGHT NOW, already-updated sites included. For site spin s,
//     ΔE = h·s + Jx·s·(s_left + s_right) + Jy·s·(s_up + s_down), and the
//     flip s → −s is accepted iff u < exp(−2βΔE) with u drawn uniformly
//     from [0,1) exactly once per site, unconditionally. When ΔE < 0 the
//     exponential exceeds 1 and the comparison is always true, which is why
//     no explicit min(1,·) appears; the collapsed form and the fixed
//     one-draw-per-site discipline keep a seeded trajectory bit-stable.
//   - Thermalize repeats Sweep for burn-in without measuring.
//   - Run burns in, then alternates {re-thermalize, one sweep, measure} to
//     build fixed-length ensembles of M, E, G, reducing them to means,
//     susceptibility χ and specific heat c_v (population variances).
//   - NewRNG is the one deterministic source factory; nothing in the
//     package reads global randomness.
//
// Why:
//
//   - Detailed balance with the exact acceptance expression above is the
//     whole correctness story of the engine; everything else is bookkeeping.
//   - Reproducibility is a contract: same seed, same parameters ⇒ the same
//     Markov chain, accepted-flip count, and Result, bit for bit.
//
// Reduction conventions:
//
//   - χ = β·Var(M)/N for h ≠ 0, and β·Var(M)/N² for h = 0 exactly: the
//     field-free uncoupled ensemble is scale-independent noise and the
//     extra 1/N removes the spurious extensive factor.
//   - c_v = β²·Var(E)/N.
//
// Complexity:
//
//   - Sweep: O(rows×cols) time, O(1) memory; Run: O(total sweeps × N).
//
// Errors:
//
//   - ErrInvalidTemperature: T ≤ 0 (or NaN) anywhere β = 1/T is needed.
//   - ErrInvalidIterations, ErrInvalidThermSteps: malformed Options.
//   - ErrNilLattice, ErrNilRand: missing collaborators.
//
// All validation happens before the first site is touched; a failed call
// leaves the lattice exactly as it was.
package metropolis
