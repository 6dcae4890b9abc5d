// Package isinglab is your in-memory laboratory for simulating, sweeping,
// and analyzing the two-dimensional Ising model — from single spin flips to
// full phase diagrams.
//
// 🚀 What is isinglab?
//
//	A deterministic, single-threaded Metropolis Monte Carlo engine that brings together:
//		• Lattice primitives: toroidal ±1 spin grids with any-integer wraparound
//		• Update kernel: single-spin-flip Metropolis sweeps in row-major scan order
//		• Observables: magnetization, energy, k-th neighbor two-point correlation
//		• Sampling: burn-in, re-thermalized ensembles, susceptibility & specific heat
//		• Sweeps: linear parameter grids over T, h, Jx, Jy with state carry-over
//		• Calibration: closed-form zero-coupling law with per-point residuals
//		• Histograms: fixed-width binning of magnetization and energy ensembles
//
// ✨ Why choose isinglab?
//
//   - Reproducible – every random draw flows from one injected *rand.Rand
//   - Honest errors – package-prefixed sentinels, errors.Is-friendly wrapping
//   - Pure Go – no cgo; tables, terminal charts, and PNG figures included
//   - Faithful – preserves the reference conventions (once-per-bond energy,
//     one acceptance draw per site) measured values depend on
//
// Under the hood, everything is organized under six subpackages:
//
//	lattice/    — spin grid: construction, toroidal indexing, snapshots
//	metropolis/ — update kernel, thermalization, ensemble sampler, reductions
//	observable/ — per-snapshot magnetization, energy, correlation
//	sweep/      — linear parameter grids, nearest-neighbor & zero-coupling drivers
//	histogram/  — fixed-width ensemble binning
//	render/     — tables, ASCII charts, PNG scatter & bar figures
//
// Quick ASCII example:
//
//	    + - +
//	    - - +
//	    + + -
//
//	is a 3×3 spin grid; each +/− is one ±1 spin, and every site neighbors
//	four others through the toroidal wrap.
//
// The cmd/isinglab CLI drives sweeps and histogram studies from YAML
// configuration; examples/ holds runnable end-to-end scenarios.
//
//	go get github.com/gharib85/isinglab
package isinglab
