package main

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gharib85/isinglab/lattice"
	"github.com/gharib85/isinglab/metropolis"
	"github.com/gharib85/isinglab/observable"
	"github.com/gharib85/isinglab/sweep"
)

// rangeConfig is the YAML shape of one linear parameter range.
type rangeConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// fileConfig is the YAML shape of a simulation run. Every field has a
// default mirroring the reference constants, so a config file only needs
// the values it changes.
type fileConfig struct {
	Rows           int         `yaml:"rows"`
	Cols           int         `yaml:"cols"`
	Seed           int64       `yaml:"seed"`
	Iterations     int         `yaml:"iterations"`
	ThermSteps     int         `yaml:"therm_steps"`
	ThermPerSample int         `yaml:"therm_per_sample"`
	Distance       int         `yaml:"distance"`
	Mode           string      `yaml:"mode"`
	BinWidth       float64     `yaml:"bin_width"`
	Points         int         `yaml:"points"`
	Temperature    rangeConfig `yaml:"temperature"`
	Field          rangeConfig `yaml:"field"`
	CouplingX      rangeConfig `yaml:"coupling_x"`
	CouplingY      rangeConfig `yaml:"coupling_y"`
}

// defaultConfig returns the reference constants: an 8×8 grid, 1000-sample
// ensembles with 10 re-thermalization sweeps per sample, unit couplings,
// zero field, and a 50-point temperature sweep from 0.1 to 5.1.
func defaultConfig() *fileConfig {
	return &fileConfig{
		Rows:           8,
		Cols:           8,
		Seed:           0,
		Iterations:     1000,
		ThermSteps:     0,
		ThermPerSample: 10,
		Distance:       1,
		Mode:           observable.Disconnected.String(),
		BinWidth:       1,
		Points:         50,
		Temperature:    rangeConfig{Start: 0.1, End: 5.1},
		Field:          rangeConfig{Start: 0, End: 0},
		CouplingX:      rangeConfig{Start: 1, End: 1},
		CouplingY:      rangeConfig{Start: 1, End: 1},
	}
}

// loadConfig reads a YAML file over the defaults. An empty path yields the
// defaults unchanged.
func loadConfig(path string) (*fileConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// samplingOptions maps the flat config fields onto sampler options. Deep
// validation happens inside the library call.
func (c *fileConfig) samplingOptions() (metropolis.Options, error) {
	mode, err := observable.ParseMode(c.Mode)
	if err != nil {
		return metropolis.Options{}, fmt.Errorf("mode: %w", err)
	}

	return metropolis.Options{
		Iterations:     c.Iterations,
		ThermSteps:     c.ThermSteps,
		ThermPerSample: c.ThermPerSample,
		Distance:       c.Distance,
		Mode:           mode,
	}, nil
}

// sweepConfig maps the config onto a sweep plan.
func (c *fileConfig) sweepConfig() (sweep.Config, error) {
	sampling, err := c.samplingOptions()
	if err != nil {
		return sweep.Config{}, err
	}

	return sweep.Config{
		Temperature: sweep.Range{Start: c.Temperature.Start, End: c.Temperature.End},
		Field:       sweep.Range{Start: c.Field.Start, End: c.Field.End},
		CouplingX:   sweep.Range{Start: c.CouplingX.Start, End: c.CouplingX.End},
		CouplingY:   sweep.Range{Start: c.CouplingY.Start, End: c.CouplingY.End},
		Points:      c.Points,
		Sampling:    sampling,
	}, nil
}

// newLattice builds the configured grid with independent ±1 draws from rng.
func (c *fileConfig) newLattice(rng *rand.Rand) (*lattice.Lattice, error) {
	return lattice.New(c.Rows, c.Cols, rng)
}
