package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sfat-model/sfat/pkg/sfat"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.String("log-level", "", "")
	fs.Int("precision", DefaultPrecision, "")
	return fs
}

// isolate runs the test from an empty directory so no sfat.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	ResetConfig()
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, GetConfigFileUsed())
	assert.Equal(t, 200, cfg.Space.Points)
	assert.Equal(t, []float64{0.7}, cfg.Redshifts)
	assert.Nil(t, cfg.Normalization)
}

func TestLoadConfig_File(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
output: json
precision: 3
constants:
  kappa: 0.2
  x0: 2.0
space:
  start: 1.0
  stop: 2.0
  points: 11
normalization:
  start: 0.1
  stop: 5.0
  points: 50
redshifts: [0.5, 1.0]
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 3, cfg.Precision)
	assert.Equal(t, 0.2, cfg.Constants.Kappa)
	assert.Equal(t, 2.0, cfg.Constants.X0)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.05, cfg.Constants.LambdaLife)
	assert.Equal(t, RangeConfig{Start: 1, Stop: 2, Points: 11}, cfg.Space)
	assert.Equal(t, RangeConfig{Start: 1, Stop: 10, Points: 200}, cfg.Time)
	require.NotNil(t, cfg.Normalization)
	assert.Equal(t, RangeConfig{Start: 0.1, Stop: 5, Points: 50}, cfg.NormalizationRange())
	assert.Equal(t, []float64{0.5, 1.0}, cfg.Redshifts)
}

func TestLoadConfig_DiscoversFileUpward(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "precision: 2\n")

	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	t.Chdir(sub)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, ConfigFileName, filepath.Base(GetConfigFileUsed()))
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig(filepath.Join(dir, "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "constants:\n  kappa: 0.2\n")
	t.Setenv("SFAT_CONSTANTS__KAPPA", "0.3")
	t.Setenv("SFAT_OUTPUT", "yaml")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Constants.Kappa)
	assert.Equal(t, "yaml", cfg.OutputFormat)
}

func TestLoadConfig_EnvRedshiftList(t *testing.T) {
	isolate(t)
	t.Setenv("SFAT_REDSHIFTS", "0.5,1,2")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 2}, cfg.Redshifts)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SFAT_OUTPUT", "yaml")
	t.Setenv("SFAT_PRECISION", "4")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--output", "csv", "--log-level", "debug"}))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.OutputFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unchanged flags do not shadow lower layers.
	assert.Equal(t, 4, cfg.Precision)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{name: "bad output", content: "output: xml\n", errSubstr: "unknown output format"},
		{name: "bad log level", content: "log_level: loud\n", errSubstr: "invalid log level"},
		{name: "bad precision", content: "precision: 40\n", errSubstr: "precision"},
		{name: "zero x0", content: "constants:\n  x0: 0\n", errSubstr: "x0 must be positive"},
		{name: "space at zero", content: "space:\n  start: 0\n", errSubstr: "space range: start must be positive"},
		{name: "time reversed", content: "time:\n  start: 5\n  stop: 1\n", errSubstr: "time range"},
		{name: "too few points", content: "beta:\n  points: 1\n", errSubstr: "beta range"},
		{name: "bad redshift", content: "redshifts: [-1]\n", errSubstr: "redshift"},
		{name: "center outside normalization", content: "normalization:\n  start: 0.5\n  stop: 1.0\n  points: 10\n", errSubstr: "outside the normalization range"},
		{name: "center outside space", content: "constants:\n  bio_center: 5\n", errSubstr: "bio_center 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := writeConfig(t, dir, tt.content)

			_, err := LoadConfig(path, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
			assert.Contains(t, err.Error(), ConfigFileName)
		})
	}
}

func TestConfig_Model(t *testing.T) {
	cfg := Default()

	m, err := cfg.Model()
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Density.RhoMax())
	assert.Equal(t, 0.1, m.Constants.Kappa)

	cfg.Normalization = &RangeConfig{Start: 1, Stop: 3, Points: 2}
	m, err = cfg.Model()
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Density.RhoMax())

	cfg.Normalization = &RangeConfig{Start: 3, Stop: 4, Points: 1}
	_, err = cfg.Model()
	assert.Error(t, err)
}

func TestConfig_NormalizationMustContainCenter(t *testing.T) {
	cfg := Default()
	cfg.Normalization = &RangeConfig{Start: 0.5, Stop: 1.0, Points: 10}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the normalization range")

	_, err = cfg.Model()
	require.Error(t, err)
	assert.ErrorIs(t, err, sfat.ErrInvalidDomain)

	cfg.Normalization = &RangeConfig{Start: 0.5, Stop: 2.5, Points: 10}
	require.NoError(t, cfg.Validate())
	m, err := cfg.Model()
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.NormalizedBioDensity(cfg.Constants.BioCenter))
	for _, x := range []float64{0.5, 1.0, 2.0, 2.5} {
		assert.LessOrEqual(t, m.NormalizedBioDensity(x), 1.0)
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default(), FromContext(ctx))

	cfg := Default()
	cfg.Precision = 2
	assert.Same(t, cfg, FromContext(WithConfig(ctx, cfg)))

	// Fallback logger discards.
	GetLogger(ctx).Info("dropped")

	buf := &bytes.Buffer{}
	logger, err := NewLogger(buf, cfg)
	require.NoError(t, err)
	ctx = context.WithValue(ctx, LoggerKey(), logger)
	GetLogger(ctx).Warn("kept", "k", 1)
	GetLogger(ctx).Debug("hidden")
	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLogger_VerboseForcesDebug(t *testing.T) {
	cfg := Default()
	cfg.Verbose = true

	buf := &bytes.Buffer{}
	logger, err := NewLogger(buf, cfg)
	require.NoError(t, err)
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	cfg.LogLevel = "chatty"
	_, err = NewLogger(buf, cfg)
	assert.Error(t, err)
}
