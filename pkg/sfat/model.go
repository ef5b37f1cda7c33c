package sfat

import "fmt"

// Model evaluates the spatial formulas. It carries the normalized density
// explicitly so that nothing depends on when rho_max was computed.
type Model struct {
	Constants Constants
	Density   BioDensity
}

// NewModel returns a model over already-built constants and density.
func NewModel(c Constants, d BioDensity) *Model {
	return &Model{Constants: c, Density: d}
}

// New validates c, computes the normalization constant over normalization
// and returns the resulting model.
func New(c Constants, normalization Domain) (*Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	d, err := NewBioDensity(c.BioCenter, c.BioWidth, normalization)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize density: %w", err)
	}
	return NewModel(c, d), nil
}

// NormalizedBioDensity returns ρ_bio(x) in (0, 1].
func (m *Model) NormalizedBioDensity(x float64) float64 {
	return m.Density.Normalized(x)
}

// LifeTerm returns ρ_bio(x)·λ.
func (m *Model) LifeTerm(x float64) float64 {
	return m.Density.Normalized(x) * m.Constants.LambdaLife
}

// TotalPotential returns V(σ(x)) + ρ_bio(x)·λ.
// It returns ErrDomain for x ≤ 0.
func (m *Model) TotalPotential(x float64) (float64, error) {
	s, err := m.Constants.Sigma(x)
	if err != nil {
		return 0, fmt.Errorf("total_potential: %w", err)
	}
	return m.Constants.LogPeriodicPotential(s) + m.LifeTerm(x), nil
}
