package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gharib85/isinglab/metropolis"
	"github.com/gharib85/isinglab/observable"
	"github.com/gharib85/isinglab/sweep"
)

// writeConfig drops YAML into a temp file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestDefaultConfig_ReferenceConstants pins the built-in defaults to the
// reference simulation constants.
func TestDefaultConfig_ReferenceConstants(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, 8, cfg.Rows)
	assert.Equal(t, 8, cfg.Cols)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 1000, cfg.Iterations)
	assert.Equal(t, 0, cfg.ThermSteps)
	assert.Equal(t, 10, cfg.ThermPerSample)
	assert.Equal(t, 1, cfg.Distance)
	assert.Equal(t, "disconnected", cfg.Mode)
	assert.Equal(t, 1.0, cfg.BinWidth)
	assert.Equal(t, 50, cfg.Points)
	assert.Equal(t, rangeConfig{Start: 0.1, End: 5.1}, cfg.Temperature)
	assert.Equal(t, rangeConfig{Start: 0, End: 0}, cfg.Field)
	assert.Equal(t, rangeConfig{Start: 1, End: 1}, cfg.CouplingX)
	assert.Equal(t, rangeConfig{Start: 1, End: 1}, cfg.CouplingY)
}

// TestLoadConfig_EmptyPath returns the defaults untouched.
func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// TestLoadConfig_OverlaysPartialFile checks that a file only overrides the
// fields it names.
func TestLoadConfig_OverlaysPartialFile(t *testing.T) {
	path := writeConfig(t, `
rows: 16
cols: 4
seed: 9
mode: connected
temperature:
  start: 1.0
  end: 4.0
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Rows)
	assert.Equal(t, 4, cfg.Cols)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "connected", cfg.Mode)
	assert.Equal(t, rangeConfig{Start: 1, End: 4}, cfg.Temperature)

	// Untouched fields keep their defaults.
	assert.Equal(t, 1000, cfg.Iterations)
	assert.Equal(t, 10, cfg.ThermPerSample)
	assert.Equal(t, 50, cfg.Points)
	assert.Equal(t, rangeConfig{Start: 1, End: 1}, cfg.CouplingX)
}

// TestLoadConfig_Failures covers a missing file and malformed YAML.
func TestLoadConfig_Failures(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")

	_, err = loadConfig(writeConfig(t, "rows: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

// TestSamplingOptions_MapsMode checks the textual mode mapping and its
// failure path.
func TestSamplingOptions_MapsMode(t *testing.T) {
	cfg := defaultConfig()
	cfg.Mode = "Connected"

	opts, err := cfg.samplingOptions()
	require.NoError(t, err)
	assert.Equal(t, observable.Connected, opts.Mode)
	assert.Equal(t, cfg.Iterations, opts.Iterations)
	assert.Equal(t, cfg.ThermPerSample, opts.ThermPerSample)

	cfg.Mode = "sideways"
	_, err = cfg.samplingOptions()
	assert.ErrorIs(t, err, observable.ErrInvalidMode)
}

// TestSweepConfig_MapsRanges checks the range and sampling mapping.
func TestSweepConfig_MapsRanges(t *testing.T) {
	cfg := defaultConfig()
	cfg.Temperature = rangeConfig{Start: 0.5, End: 2.5}
	cfg.Field = rangeConfig{Start: -1, End: 1}
	cfg.Points = 7

	sc, err := cfg.sweepConfig()
	require.NoError(t, err)
	assert.Equal(t, sweep.Range{Start: 0.5, End: 2.5}, sc.Temperature)
	assert.Equal(t, sweep.Range{Start: -1, End: 1}, sc.Field)
	assert.Equal(t, sweep.Range{Start: 1, End: 1}, sc.CouplingX)
	assert.Equal(t, 7, sc.Points)
	assert.Equal(t, metropolis.DefaultOptions(), sc.Sampling)
}

// TestNewLattice builds the configured dimensions.
func TestNewLattice(t *testing.T) {
	cfg := defaultConfig()
	cfg.Rows, cfg.Cols = 3, 5

	l, err := cfg.newLattice(metropolis.NewRNG(1))
	require.NoError(t, err)
	assert.Equal(t, 3, l.Rows())
	assert.Equal(t, 5, l.Cols())
}
