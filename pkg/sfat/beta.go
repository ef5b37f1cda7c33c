package sfat

import (
	"math"
	"strconv"
)

// BetaResult is the outcome of the beta function at a coupling G.
// Defined is false where the function has no real value; Value is then 0
// and must not be read.
type BetaResult struct {
	G       float64
	Value   float64
	Defined bool
}

// String formats the value, or "undefined".
func (b BetaResult) String() string {
	if !b.Defined {
		return "undefined"
	}
	return strconv.FormatFloat(b.Value, 'g', -1, 64)
}

// Beta evaluates β(g) = -g + g³ + A·sin(2π·ln(g)/ln(φ)).
// The result is undefined for g ≤ 0, where ln(g) has no real value, and
// for inputs whose result would not be finite.
func (c Constants) Beta(g float64) BetaResult {
	if !isPositive(g) {
		return BetaResult{G: g}
	}
	v := -g + g*g*g + c.BetaAmplitude*math.Sin(2*math.Pi*math.Log(g)/lnPhi)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return BetaResult{G: g}
	}
	return BetaResult{G: g, Value: v, Defined: true}
}

// BetaTable evaluates Beta at every point of domain.
func (c Constants) BetaTable(domain Domain) []BetaResult {
	out := make([]BetaResult, len(domain))
	for i, g := range domain {
		out[i] = c.Beta(g)
	}
	return out
}
