// Package config provides configuration management for the sfat CLI.
//
// Configuration is layered with koanf. From lowest to highest precedence:
// built-in defaults, the sfat.yaml file, SFAT_ environment variables and
// explicitly set command-line flags.
package config

import (
	"fmt"

	"github.com/sfat-model/sfat/pkg/sfat"
)

// Config file names, searched in this order.
const (
	ConfigFileName    = "sfat.yaml"
	ConfigFileNameAlt = "sfat.yml"
)

// EnvPrefix prefixes every environment variable read by the loader.
// Nested keys use a double underscore: SFAT_CONSTANTS__KAPPA.
const EnvPrefix = "SFAT_"

// Default configuration values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel  = "warn"
	DefaultPrecision = 6
)

// RangeConfig describes an evenly spaced sampling domain.
type RangeConfig struct {
	Start  float64 `koanf:"start"`
	Stop   float64 `koanf:"stop"`
	Points int     `koanf:"points"`
}

// Domain builds the sample points.
func (r RangeConfig) Domain() (sfat.Domain, error) {
	return sfat.Linspace(r.Start, r.Stop, r.Points)
}

// ConstantsConfig holds the tunable model parameters. The golden ratio is
// not configurable.
type ConstantsConfig struct {
	Omega               float64 `koanf:"omega"`
	Kappa               float64 `koanf:"kappa"`
	LambdaLife          float64 `koanf:"lambda_life"`
	X0                  float64 `koanf:"x0"`
	T0                  float64 `koanf:"t0"`
	PlanckMass          float64 `koanf:"planck_mass"`
	BioCenter           float64 `koanf:"bio_center"`
	BioWidth            float64 `koanf:"bio_width"`
	BetaAmplitude       float64 `koanf:"beta_amplitude"`
	Baseline            float64 `koanf:"baseline"`
	CorrectionAmplitude float64 `koanf:"correction_amplitude"`
}

// Constants converts to the evaluator's parameter set.
func (c ConstantsConfig) Constants() sfat.Constants {
	return sfat.Constants{
		Omega:               c.Omega,
		Kappa:               c.Kappa,
		LambdaLife:          c.LambdaLife,
		X0:                  c.X0,
		T0:                  c.T0,
		PlanckMass:          c.PlanckMass,
		BioCenter:           c.BioCenter,
		BioWidth:            c.BioWidth,
		BetaAmplitude:       c.BetaAmplitude,
		Baseline:            c.Baseline,
		CorrectionAmplitude: c.CorrectionAmplitude,
	}
}

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool            `koanf:"verbose"`
	OutputFormat string          `koanf:"output"`
	LogLevel     string          `koanf:"log_level"`
	Precision    int             `koanf:"precision"`
	Constants    ConstantsConfig `koanf:"constants"`
	Space        RangeConfig     `koanf:"space"`
	Time         RangeConfig     `koanf:"time"`
	Beta         RangeConfig     `koanf:"beta"`
	// Normalization is the domain rho_max is computed over. Nil means Space.
	Normalization *RangeConfig `koanf:"normalization"`
	Redshifts     []float64    `koanf:"redshifts"`
}

// Default returns the built-in configuration:
// 200 points over x ∈ [0.5, 3.5] and t ∈ [1, 10].
func Default() *Config {
	c := sfat.DefaultConstants()
	return &Config{
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		Precision:    DefaultPrecision,
		Constants: ConstantsConfig{
			Omega:               c.Omega,
			Kappa:               c.Kappa,
			LambdaLife:          c.LambdaLife,
			X0:                  c.X0,
			T0:                  c.T0,
			PlanckMass:          c.PlanckMass,
			BioCenter:           c.BioCenter,
			BioWidth:            c.BioWidth,
			BetaAmplitude:       c.BetaAmplitude,
			Baseline:            c.Baseline,
			CorrectionAmplitude: c.CorrectionAmplitude,
		},
		Space:     RangeConfig{Start: 0.5, Stop: 3.5, Points: 200},
		Time:      RangeConfig{Start: 1, Stop: 10, Points: 200},
		Beta:      RangeConfig{Start: -0.5, Stop: 2.0, Points: 26},
		Redshifts: []float64{0.7},
	}
}

// defaultsMap flattens Default for the koanf confmap provider.
func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"verbose":                        d.Verbose,
		"output":                         d.OutputFormat,
		"log_level":                      d.LogLevel,
		"precision":                      d.Precision,
		"constants.omega":                d.Constants.Omega,
		"constants.kappa":                d.Constants.Kappa,
		"constants.lambda_life":          d.Constants.LambdaLife,
		"constants.x0":                   d.Constants.X0,
		"constants.t0":                   d.Constants.T0,
		"constants.planck_mass":          d.Constants.PlanckMass,
		"constants.bio_center":           d.Constants.BioCenter,
		"constants.bio_width":            d.Constants.BioWidth,
		"constants.beta_amplitude":       d.Constants.BetaAmplitude,
		"constants.baseline":             d.Constants.Baseline,
		"constants.correction_amplitude": d.Constants.CorrectionAmplitude,
		"space.start":                    d.Space.Start,
		"space.stop":                     d.Space.Stop,
		"space.points":                   d.Space.Points,
		"time.start":                     d.Time.Start,
		"time.stop":                      d.Time.Stop,
		"time.points":                    d.Time.Points,
		"beta.start":                     d.Beta.Start,
		"beta.stop":                      d.Beta.Stop,
		"beta.points":                    d.Beta.Points,
		"redshifts":                      d.Redshifts,
	}
}

// NormalizationRange returns the domain rho_max is computed over.
func (c *Config) NormalizationRange() RangeConfig {
	if c.Normalization != nil {
		return *c.Normalization
	}
	return c.Space
}

// Model builds the evaluator, computing the normalization constant first.
func (c *Config) Model() (*sfat.Model, error) {
	norm, err := c.NormalizationRange().Domain()
	if err != nil {
		return nil, fmt.Errorf("normalization: %w", err)
	}
	return sfat.New(c.Constants.Constants(), norm)
}
