package sfat

import (
	"fmt"
	"math"
)

// Phi is the golden ratio (1+√5)/2.
const Phi = math.Phi

// lnPhi is one golden-ratio step on the logarithmic scale.
var lnPhi = math.Log(Phi)

// Constants holds the scalar parameters of the model. A Constants value is
// never mutated once built; copy it to vary a parameter.
type Constants struct {
	// Omega is the angular frequency of the log-periodic potential (rad).
	Omega float64
	// Kappa is the log-periodic coupling; the potential is bounded by ±Kappa.
	Kappa float64
	// LambdaLife scales the biological density into the total potential.
	LambdaLife float64
	// X0 is the spatial origin (Big Bang reference point).
	X0 float64
	// T0 is the reference time unit.
	T0 float64
	// PlanckMass in GeV.
	PlanckMass float64

	// BioCenter and BioWidth shape the Gaussian biological density.
	BioCenter float64
	BioWidth  float64

	// BetaAmplitude scales the oscillatory term of the beta function.
	BetaAmplitude float64

	// Baseline is the ΛCDM reference value the cosmological prediction
	// is corrected from.
	Baseline float64
	// CorrectionAmplitude is the relative size of the log-periodic
	// correction applied to Baseline.
	CorrectionAmplitude float64
}

// DefaultConstants returns the reference parameter set.
func DefaultConstants() Constants {
	return Constants{
		Omega:               2 * math.Pi,
		Kappa:               0.1,
		LambdaLife:          0.05,
		X0:                  1.0,
		T0:                  1.0,
		PlanckMass:          1.22e19,
		BioCenter:           2.0,
		BioWidth:            0.3,
		BetaAmplitude:       0.05,
		Baseline:            0.698,
		CorrectionAmplitude: 0.02,
	}
}

// Validate reports whether the constants can be evaluated without hitting
// a singularity in the reference values themselves.
func (c Constants) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"omega", c.Omega},
		{"kappa", c.Kappa},
		{"lambda_life", c.LambdaLife},
		{"planck_mass", c.PlanckMass},
		{"bio_center", c.BioCenter},
		{"beta_amplitude", c.BetaAmplitude},
		{"correction_amplitude", c.CorrectionAmplitude},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidConstants, f.name, f.v)
		}
	}
	if !isPositive(c.X0) {
		return fmt.Errorf("%w: x0 must be positive, got %g", ErrInvalidConstants, c.X0)
	}
	if !isPositive(c.T0) {
		return fmt.Errorf("%w: t0 must be positive, got %g", ErrInvalidConstants, c.T0)
	}
	if !isPositive(c.BioWidth) {
		return fmt.Errorf("%w: bio_width must be positive, got %g", ErrInvalidConstants, c.BioWidth)
	}
	if c.Baseline == 0 || math.IsNaN(c.Baseline) || math.IsInf(c.Baseline, 0) {
		return fmt.Errorf("%w: baseline must be finite and non-zero, got %g", ErrInvalidConstants, c.Baseline)
	}
	return nil
}

// isPositive reports whether v is a finite value greater than zero.
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
