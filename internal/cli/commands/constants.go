package commands

import (
	"github.com/sfat-model/sfat/internal/cli/output"
	"github.com/sfat-model/sfat/pkg/sfat"
	"github.com/spf13/cobra"
)

// NewConstantsCommand creates the constants command.
func NewConstantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Show the model constants and the density normalization",
		Long: `Show every parameter the formulas are evaluated with, after defaults,
the config file, environment variables and flags have been applied.

rho_max is computed from the normalization domain before it is shown.`,
		Example: `  # Inspect the effective constants
  sfat constants

  # With an overridden coupling
  SFAT_CONSTANTS__KAPPA=0.2 sfat constants -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return renderConstants(cc, constantInfos(cc.Model))
		},
	}
}

func constantInfos(m *sfat.Model) []output.ConstantInfo {
	c := m.Constants
	return []output.ConstantInfo{
		{Name: "phi", Symbol: "φ", Value: sfat.Phi, Description: "Golden ratio (1+√5)/2"},
		{Name: "omega", Symbol: "ω", Value: c.Omega, Description: "Log-periodic angular frequency (rad)"},
		{Name: "kappa", Symbol: "κ", Value: c.Kappa, Description: "Log-periodic coupling"},
		{Name: "lambda_life", Symbol: "λ", Value: c.LambdaLife, Description: "Life-field coupling"},
		{Name: "x0", Symbol: "x0", Value: c.X0, Description: "Spatial origin (Big Bang reference)"},
		{Name: "t0", Symbol: "t0", Value: c.T0, Description: "Reference time unit"},
		{Name: "planck_mass", Symbol: "M_P", Value: c.PlanckMass, Description: "Planck mass (GeV)"},
		{Name: "bio_center", Symbol: "c", Value: c.BioCenter, Description: "Biological density center"},
		{Name: "bio_width", Symbol: "w", Value: c.BioWidth, Description: "Biological density width"},
		{Name: "beta_amplitude", Symbol: "A_β", Value: c.BetaAmplitude, Description: "Beta function oscillation amplitude"},
		{Name: "baseline", Symbol: "ΛCDM", Value: c.Baseline, Description: "Cosmological baseline value"},
		{Name: "correction_amplitude", Symbol: "A_z", Value: c.CorrectionAmplitude, Description: "Relative cosmological correction"},
		{Name: "rho_max", Symbol: "ρ_max", Value: m.Density.RhoMax(), Description: "Density normalization constant"},
	}
}

func renderConstants(cc *CommandContext, infos []output.ConstantInfo) error {
	r := cc.Renderer
	if r.Structured() {
		return r.Encode(infos)
	}
	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{info.Name, info.Symbol, output.FormatFloat(info.Value, -1), info.Description}
	}
	r.Grid("SFAT - Model Constants", []string{"name", "symbol", "value", "description"}, rows)
	return nil
}
