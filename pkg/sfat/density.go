package sfat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// BioDensity is the Gaussian "life coupling" density together with the
// normalization constant it was frozen against.
type BioDensity struct {
	center float64
	width  float64
	rhoMax float64
}

// NewBioDensity builds the density centered at center with the given width
// and computes rho_max over domain.
//
// The center must lie within [min(domain), max(domain)]. rho_max is the
// largest raw density over the sampled values and the center itself, so the
// normalized density is in (0, 1] and exactly 1 at the center even when the
// center falls between two samples.
func NewBioDensity(center, width float64, domain Domain) (BioDensity, error) {
	if !isPositive(width) {
		return BioDensity{}, fmt.Errorf("%w: density width must be positive, got %g", ErrInvalidConstants, width)
	}
	if math.IsNaN(center) || math.IsInf(center, 0) {
		return BioDensity{}, fmt.Errorf("%w: density center must be finite, got %g", ErrInvalidConstants, center)
	}
	if len(domain) == 0 {
		return BioDensity{}, fmt.Errorf("%w: normalization domain is empty", ErrInvalidDomain)
	}
	lo, hi := floats.Min(domain), floats.Max(domain)
	if center < lo || center > hi {
		return BioDensity{}, fmt.Errorf("%w: density center %g outside normalization domain [%g, %g]", ErrInvalidDomain, center, lo, hi)
	}

	d := BioDensity{center: center, width: width}
	raw := make([]float64, len(domain), len(domain)+1)
	for i, x := range domain {
		raw[i] = d.Raw(x)
	}
	raw = append(raw, d.Raw(center))
	d.rhoMax = floats.Max(raw)
	return d, nil
}

// Raw returns the unnormalized density exp(-(x-c)²/(2w²)).
func (d BioDensity) Raw(x float64) float64 {
	dx := x - d.center
	return math.Exp(-(dx * dx) / (2 * d.width * d.width))
}

// Normalized returns Raw(x)/rho_max.
func (d BioDensity) Normalized(x float64) float64 {
	return d.Raw(x) / d.rhoMax
}

// RhoMax returns the frozen normalization constant.
func (d BioDensity) RhoMax() float64 { return d.rhoMax }

// Center returns the density peak position.
func (d BioDensity) Center() float64 { return d.center }

// Width returns the density width.
func (d BioDensity) Width() float64 { return d.width }
