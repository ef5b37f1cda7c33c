package config

import (
	"fmt"
	"math"

	"github.com/sfat-model/sfat/internal/cli/output"
)

// maxPrecision is the largest number of decimals that still changes a float64.
const maxPrecision = 17

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Precision < -1 || c.Precision > maxPrecision {
		return fmt.Errorf("precision must be between -1 and %d, got %d", maxPrecision, c.Precision)
	}
	if err := c.Constants.Constants().Validate(); err != nil {
		return err
	}

	// σ is logarithmic in both x and t, so those domains must stay positive.
	if err := validateRange("space", c.Space, true); err != nil {
		return err
	}
	if err := validateRange("time", c.Time, true); err != nil {
		return err
	}
	if err := validateRange("beta", c.Beta, false); err != nil {
		return err
	}
	if c.Normalization != nil {
		if err := validateRange("normalization", *c.Normalization, false); err != nil {
			return err
		}
	}

	norm := c.NormalizationRange()
	if center := c.Constants.BioCenter; center < norm.Start || center > norm.Stop {
		return fmt.Errorf("constants.bio_center %g lies outside the normalization range [%g, %g]\nHint: set normalization (or space) to a range containing the density center", center, norm.Start, norm.Stop)
	}

	for _, z := range c.Redshifts {
		if !(z > -1) || math.IsInf(z, 1) {
			return fmt.Errorf("redshift %g must be greater than -1", z)
		}
	}
	return nil
}

func validateRange(name string, r RangeConfig, positive bool) error {
	if _, err := r.Domain(); err != nil {
		return fmt.Errorf("%s range: %w", name, err)
	}
	if positive && r.Start <= 0 {
		return fmt.Errorf("%s range: start must be positive, got %g\nHint: σ is logarithmic and undefined at or below zero", name, r.Start)
	}
	return nil
}
