package sfat

import (
	"fmt"
	"math"
)

// Sigma returns the fractal scale field σ(x) = ln(x/x0)/ln(φ), the depth of
// x below the origin counted in golden-ratio steps.
// It returns ErrDomain for x ≤ 0 and for non-finite x.
func (c Constants) Sigma(x float64) (float64, error) {
	return logScale("sigma", x, c.X0)
}

// SigmaTime applies the same scale to time: σ(t) = ln(t/t0)/ln(φ).
// It returns ErrDomain for t ≤ 0 and for non-finite t.
func (c Constants) SigmaTime(t float64) (float64, error) {
	return logScale("sigma_time", t, c.T0)
}

// LogPeriodicPotential returns V(σ) = κ·cos(ωσ), bounded in [-κ, κ].
func (c Constants) LogPeriodicPotential(sigma float64) float64 {
	return c.Kappa * math.Cos(c.Omega*sigma)
}

func logScale(op string, v, ref float64) (float64, error) {
	if !isPositive(v) {
		return 0, fmt.Errorf("%s(%g): %w", op, v, ErrDomain)
	}
	if !isPositive(ref) {
		return 0, fmt.Errorf("%s: reference %g must be positive: %w", op, ref, ErrDomain)
	}
	// ln(v) - ln(ref) stays finite where the ratio v/ref would overflow.
	return (math.Log(v) - math.Log(ref)) / lnPhi, nil
}
