package commands

import (
	"fmt"

	"github.com/sfat-model/sfat/internal/cli/output"
	"github.com/sfat-model/sfat/pkg/sfat"
	"github.com/spf13/cobra"
)

// CosmologyOptions holds options for the cosmology command.
type CosmologyOptions struct {
	Redshifts []float64
}

// NewCosmologyCommand creates the cosmology command.
func NewCosmologyCommand() *cobra.Command {
	opts := &CosmologyOptions{}

	cmd := &cobra.Command{
		Use:     "cosmology",
		Aliases: []string{"predict"},
		Short:   "Compare SFAT cosmological predictions with ΛCDM",
		Long: `Predict the corrected cosmological value at one or more redshifts:

  SFAT = ΛCDM · (1 + A·cos(2π·σ(1+z)))

and report its deviation from the ΛCDM baseline in percent. z must be
greater than -1.`,
		Example: `  # Default redshift (z = 0.7)
  sfat cosmology

  # Several redshifts
  sfat cosmology --z 0.5 --z 1 --z 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCosmology(cmd, opts)
		},
	}

	cmd.Flags().Float64SliceVar(&opts.Redshifts, "z", nil, "Redshift to predict for (repeatable, default from config)")
	BindConfigKey(cmd.Flags(), "z", "redshifts")
	return cmd
}

func runCosmology(cmd *cobra.Command, opts *CosmologyOptions) error {
	cc := NewCommandContextWithoutModel(cmd)

	zs := cc.Cfg.Redshifts
	if cmd.Flags().Changed("z") {
		zs = opts.Redshifts
	}

	ps, err := cc.Constants().Predictions(zs)
	if err != nil {
		return err
	}
	return renderPredictions(cc, ps)
}

func renderPredictions(cc *CommandContext, ps []sfat.Prediction) error {
	r := cc.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON, output.ModeYAML:
		return r.Encode(output.NewPredictionOutputs(ps))
	case output.ModeCSV:
		rows := make([][]string, len(ps))
		for i, p := range ps {
			rows[i] = []string{
				output.FormatFloat(p.Redshift, -1),
				output.FormatFloat(p.Predicted, 6),
				output.FormatFloat(p.Baseline, 6),
				output.FormatFloat(p.DeviationPercent, 2),
			}
		}
		r.Grid("", []string{"z", "sfat", "lambda_cdm", "deviation_percent"}, rows)
	default:
		for _, p := range ps {
			r.Println(predictionHeading(p))
			r.Println(predictionSummary(p))
		}
	}
	return nil
}

func predictionHeading(p sfat.Prediction) string {
	return fmt.Sprintf("Prediction for z = %s", output.FormatFloat(p.Redshift, -1))
}

func predictionSummary(p sfat.Prediction) string {
	return fmt.Sprintf("SFAT: %.6f, ΛCDM: %.6f, Δ%%: %.2f%%", p.Predicted, p.Baseline, p.DeviationPercent)
}
