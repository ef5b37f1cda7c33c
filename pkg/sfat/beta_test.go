package sfat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeta_UndefinedForNonPositive(t *testing.T) {
	c := DefaultConstants()

	for _, g := range []float64{0, -1e-12, -0.5, -3, math.Inf(-1), math.NaN()} {
		got := c.Beta(g)
		assert.False(t, got.Defined, "beta(%g) should be undefined", g)
		assert.Equal(t, "undefined", got.String())
		assert.False(t, math.IsNaN(got.Value), "undefined results carry no NaN")
	}
}

func TestBeta_FiniteForPositive(t *testing.T) {
	c := DefaultConstants()
	gs, err := Linspace(1e-6, 100, 2000)
	require.NoError(t, err)

	for _, g := range gs {
		got := c.Beta(g)
		require.True(t, got.Defined, "beta(%g) should be defined", g)
		assert.False(t, math.IsNaN(got.Value) || math.IsInf(got.Value, 0), "beta(%g) = %g", g, got.Value)
	}
}

func TestBeta_Values(t *testing.T) {
	c := DefaultConstants()

	tests := []struct {
		g    float64
		want float64
	}{
		{g: 1.0, want: 0},
		{g: 1.5, want: 1.8332254619292925},
		// ln(φ)/ln(φ) = 1 full period, so the oscillation vanishes.
		{g: Phi, want: -Phi + Phi*Phi*Phi},
	}

	for _, tt := range tests {
		got := c.Beta(tt.g)
		require.True(t, got.Defined)
		assert.InDelta(t, tt.want, got.Value, 1e-12, "beta(%g)", tt.g)
	}
}

func TestBetaTable(t *testing.T) {
	c := DefaultConstants()
	gs, err := Linspace(-0.5, 2.0, 26)
	require.NoError(t, err)

	rows := c.BetaTable(gs)
	require.Len(t, rows, 26)

	undefined := 0
	for i, r := range rows {
		assert.Equal(t, gs[i], r.G)
		if !r.Defined {
			undefined++
			assert.LessOrEqual(t, r.G, 1e-9)
		}
	}
	// -0.5 .. 0.0 in steps of 0.1
	assert.Equal(t, 6, undefined)
}
