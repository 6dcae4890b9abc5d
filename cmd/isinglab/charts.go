package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gharib85/isinglab/histogram"
	"github.com/gharib85/isinglab/metropolis"
	"github.com/gharib85/isinglab/render"
)

// obsSeries pairs one observable's sweep values with its presentation
// metadata.
type obsSeries struct {
	file   string
	title  string
	yLabel string
	vals   []float64
}

// resultSeries extracts the four per-point observables in figure order.
func resultSeries(results []metropolis.Result) []obsSeries {
	m := make([]float64, len(results))
	e := make([]float64, len(results))
	chi := make([]float64, len(results))
	cv := make([]float64, len(results))
	for i, r := range results {
		m[i] = r.MPerSite
		e[i] = r.EPerSite
		chi[i] = r.Susceptibility
		cv[i] = r.SpecificHeat
	}

	return []obsSeries{
		{
			file:   "per_site_magnetisation.png",
			title:  "Per Site Magnetisation",
			yLabel: "Per Site Magnetisation (<m>)",
			vals:   m,
		},
		{
			file:   "per_site_energy.png",
			title:  "Per Site Energy",
			yLabel: "Per Site Energy (<u>)",
			vals:   e,
		},
		{
			file:   "magnetic_susceptibility.png",
			title:  "Magnetic Susceptibility",
			yLabel: "Magnetic Susceptibility (χ)",
			vals:   chi,
		},
		{
			file:   "specific_heat.png",
			title:  "Specific Heat (at Constant Volume and Number of Particles)",
			yLabel: "Specific Heat (c_v)",
			vals:   cv,
		},
	}
}

// writePNGCharts renders one observable-vs-temperature scatter PNG per
// series into dir, creating it if needed.
func writePNGCharts(dir string, ts []float64, series []obsSeries) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating chart directory: %w", err)
	}

	for _, s := range series {
		path := filepath.Join(dir, s.file)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := render.SweepChart(f, ts, s.vals, s.title, "Temperature (T)", s.yLabel); err != nil {
			f.Close()

			return fmt.Errorf("rendering %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}
	}

	return nil
}

// writeHistogramChart renders one histogram bar-chart PNG into dir.
func writeHistogramChart(dir, file string, h *histogram.Histogram, title string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating chart directory: %w", err)
	}

	path := filepath.Join(dir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render.HistogramChart(f, h, title); err != nil {
		f.Close()

		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

// printASCIICharts writes a terminal quick-look chart per series.
func printASCIICharts(w io.Writer, series []obsSeries) {
	for _, s := range series {
		fmt.Fprintln(w)
		fmt.Fprintln(w, render.SeriesPlot(s.vals, s.title, 10, 60))
	}
}
