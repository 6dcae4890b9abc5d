// Package render implements the console tables. See doc.go for the package
// contract.
package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/gharib85/isinglab/histogram"
	"github.com/gharib85/isinglab/sweep"
)

// newTable returns a table writer configured for numeric output: literal
// headers (no auto-uppercasing) and right-aligned cells.
func newTable(w io.Writer, headers []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	t.SetHeader(headers)

	return t
}

// cell formats one value with the fixed table precision.
func cell(v float64) string {
	return fmt.Sprintf("%.7f", v)
}

// NearestNeighborTable prints one row per sweep point: the parameter tuple
// followed by the simulated per-site magnetization, per-site energy,
// susceptibility, and specific heat.
func NearestNeighborTable(w io.Writer, points []sweep.Point) {
	t := newTable(w, []string{
		"Temp.", "Ext. Field", "x-dir. cc", "y-dir. cc",
		"Sim. <m>", "Sim. <e>", "Sim. χ", "Sim. c_v",
	})
	for _, pt := range points {
		t.Append([]string{
			cell(pt.T), cell(pt.H), cell(pt.Jx), cell(pt.Jy),
			cell(pt.Result.MPerSite), cell(pt.Result.EPerSite),
			cell(pt.Result.Susceptibility), cell(pt.Result.SpecificHeat),
		})
	}
	t.Render()
}

// ZeroCouplingTables prints four consecutive tables, one per observable,
// each row holding the parameter pair, the closed-form ideal value, and the
// residual ideal − simulated.
func ZeroCouplingTables(w io.Writer, points []sweep.ZeroCouplingPoint) {
	sections := []struct {
		title  string
		symbol string
		ideal  func(sweep.ZeroCouplingPoint) float64
		resid  func(sweep.ZeroCouplingPoint) float64
	}{
		{
			title: "Per Site Magnetisation", symbol: "<m>",
			ideal: func(p sweep.ZeroCouplingPoint) float64 { return p.Ideal.M },
			resid: func(p sweep.ZeroCouplingPoint) float64 { return p.Residual.M },
		},
		{
			title: "Per Site Energy", symbol: "<e>",
			ideal: func(p sweep.ZeroCouplingPoint) float64 { return p.Ideal.E },
			resid: func(p sweep.ZeroCouplingPoint) float64 { return p.Residual.E },
		},
		{
			title: "Magnetic Susceptibility", symbol: "χ",
			ideal: func(p sweep.ZeroCouplingPoint) float64 { return p.Ideal.Chi },
			resid: func(p sweep.ZeroCouplingPoint) float64 { return p.Residual.Chi },
		},
		{
			title: "Specific Heat (at Constant Volume and Number of Particles)", symbol: "c_v",
			ideal: func(p sweep.ZeroCouplingPoint) float64 { return p.Ideal.Cv },
			resid: func(p sweep.ZeroCouplingPoint) float64 { return p.Residual.Cv },
		},
	}

	for i, sec := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, sec.title)
		t := newTable(w, []string{"Temp.", "Ext. Field", "Ideal " + sec.symbol, "Resid. " + sec.symbol})
		for _, pt := range points {
			t.Append([]string{cell(pt.T), cell(pt.H), cell(sec.ideal(pt)), cell(sec.resid(pt))})
		}
		t.Render()
	}
}

// HistogramTable prints the title line followed by one row per bin.
func HistogramTable(w io.Writer, h *histogram.Histogram, title string) error {
	if h == nil || len(h.Counts) == 0 {
		return ErrNilHistogram
	}

	fmt.Fprintln(w, title)
	t := newTable(w, []string{"Bin Edge", "Count"})
	for i, edge := range h.Edges {
		t.Append([]string{fmt.Sprintf("%g", edge), fmt.Sprintf("%.0f", h.Counts[i])})
	}
	t.Render()

	return nil
}
