package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gharib85/isinglab/lattice"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "isinglab",
		Short: "Metropolis Monte Carlo simulation of the 2D Ising model",
		Long: `isinglab runs single-spin-flip Metropolis simulations of the 2D Ising
model on a toroidal lattice.

It sweeps external field, couplings, and temperature across linear parameter
grids, reduces sampled ensembles to thermodynamic observables, and reports
results as fixed-precision tables, terminal charts, and PNG figures.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newSweepCmd(),
		newHistCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printGrid writes a titled spin-grid snapshot in the +/− console notation.
func printGrid(w io.Writer, title string, l *lattice.Lattice) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)
	fmt.Fprintln(w, l.String())
	fmt.Fprintln(w)
}
