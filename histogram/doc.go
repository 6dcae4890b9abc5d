// Package histogram bins measurement series into fixed-width histograms for
// distribution analysis of sampled ensembles.
//
// What:
//
//   - Reduce rounds every sample half-to-even to the nearest integer, spans
//     the rounded range with uniform left edges lo, lo+w, lo+2w, …, and
//     counts how many rounded samples land in each half-open bin
//     [edge, edge+w).
//   - The edge grid always extends one stride past the largest rounded
//     sample, so the top value is counted by an interior bin rather than a
//     closed boundary case.
//
// Why:
//
//   - Magnetization and energy ensembles from a sampling run concentrate on
//     integer lattice totals; rounding first and binning second keeps bins
//     aligned with the physical spectrum instead of floating-point jitter.
//   - Counts are kept as float64 so downstream reductions and plot layers
//     consume them without conversion.
//
// Errors:
//
//   - ErrInvalidBinWidth: width not positive, not finite, or so extreme
//     relative to the data range that no usable edge grid exists.
//   - ErrNoSamples: empty input series.
//   - ErrNotFinite: a NaN or infinite sample.
//
// Complexity: O(n log n) in the sample count (dominated by the sort of the
// rounded copy); memory O(n + bins).
package histogram
