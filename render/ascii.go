// Package render implements the terminal chart helper.
package render

import "github.com/guptarohit/asciigraph"

// SeriesPlot draws a measurement series as a fixed-size terminal line chart
// with the caption beneath it. An empty series yields an empty string.
func SeriesPlot(series []float64, caption string, height, width int) string {
	if len(series) == 0 {
		return ""
	}

	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
