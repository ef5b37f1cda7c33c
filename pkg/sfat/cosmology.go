package sfat

import (
	"fmt"
	"math"
)

// Prediction compares the SFAT value at a redshift with its ΛCDM baseline.
type Prediction struct {
	Redshift         float64
	Predicted        float64
	Baseline         float64
	DeviationPercent float64
}

// CosmologicalPrediction returns
//
//	predicted = baseline·(1 + A·cos(2π·σ(1+z)))
//
// and its deviation from baseline in percent. z must exceed -1.
func (c Constants) CosmologicalPrediction(z float64) (Prediction, error) {
	if !(z > -1) || math.IsInf(z, 1) {
		return Prediction{}, fmt.Errorf("cosmological_prediction(z=%g): 1+z must be positive: %w", z, ErrDomain)
	}
	s, err := c.Sigma(1 + z)
	if err != nil {
		return Prediction{}, fmt.Errorf("cosmological_prediction(z=%g): %w", z, err)
	}
	predicted := c.Baseline * (1 + c.CorrectionAmplitude*math.Cos(2*math.Pi*s))
	return Prediction{
		Redshift:         z,
		Predicted:        predicted,
		Baseline:         c.Baseline,
		DeviationPercent: (predicted - c.Baseline) / c.Baseline * 100,
	}, nil
}

// Predictions evaluates CosmologicalPrediction for each redshift, stopping
// at the first invalid one.
func (c Constants) Predictions(redshifts []float64) ([]Prediction, error) {
	out := make([]Prediction, 0, len(redshifts))
	for _, z := range redshifts {
		p, err := c.CosmologicalPrediction(z)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
