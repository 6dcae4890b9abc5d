// Package render implements the PNG chart helpers.
package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/gharib85/isinglab/histogram"
)

// flatRange returns an explicit padded axis range when every value in vals
// is identical, and nil otherwise. Constant series occur in practice (a
// frozen magnetization, a single-temperature grid) and the chart layer
// cannot autoscale a zero-width range.
func flatRange(vals []float64) *chart.ContinuousRange {
	lo, hi := floats.Min(vals), floats.Max(vals)
	if lo != hi {
		return nil
	}

	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}

// SweepChart renders an observable-vs-parameter scatter plot as PNG. The
// stroke is disabled so points stay disconnected, matching the scatter view
// of a parameter sweep.
func SweepChart(w io.Writer, x, y []float64, title, xLabel, yLabel string) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrSeriesMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(x))
	}

	xAxis := chart.XAxis{Name: xLabel}
	if r := flatRange(x); r != nil {
		xAxis.Range = r
	}
	yAxis := chart.YAxis{Name: yLabel}
	if r := flatRange(y); r != nil {
		yAxis.Range = r
	}

	graph := chart.Chart{
		Title:  title,
		Width:  800,
		Height: 500,
		XAxis:  xAxis,
		YAxis:  yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
				},
				XValues: x,
				YValues: y,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}

// HistogramChart renders binned counts as a PNG bar chart, one bar per bin
// labelled with its left edge. The canvas widens with the bin count so bars
// keep a readable width.
func HistogramChart(w io.Writer, h *histogram.Histogram, title string) error {
	if h == nil || len(h.Counts) == 0 {
		return ErrNilHistogram
	}

	bars := make([]chart.Value, len(h.Counts))
	for i, c := range h.Counts {
		bars[i] = chart.Value{Value: c, Label: fmt.Sprintf("%g", h.Edges[i])}
	}

	width := 160 + 26*len(bars)
	if width < 480 {
		width = 480
	}
	graph := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     500,
		BarWidth:   20,
		BarSpacing: 6,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: floats.Max(h.Counts) + 1},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}
