// Package render turns sweep and histogram results into human-facing output:
// console tables, terminal line charts, and PNG figures.
//
// What:
//
//   - NearestNeighborTable and ZeroCouplingTables print right-aligned
//     fixed-precision (%.7f) tables of sweep results to any io.Writer.
//   - HistogramTable prints bin edges and counts.
//   - SeriesPlot draws a measurement series as a terminal braille chart.
//   - SweepChart renders an observable-vs-temperature scatter as PNG;
//     HistogramChart renders binned counts as a PNG bar chart.
//
// Why:
//
//   - The simulation packages return plain values and never format or log;
//     every presentation concern lives here so the CLI and the examples
//     stay thin.
//
// Errors:
//
//   - ErrNilHistogram: a histogram function received nil or no bins.
//   - ErrSeriesMismatch: x and y series of different lengths.
//   - ErrTooFewPoints: a scatter series with fewer than two points.
//
// PNG rendering reports chart-layer failures verbatim.
package render
