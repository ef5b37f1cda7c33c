package commands

import (
	"fmt"

	"github.com/sfat-model/sfat/internal/cli/output"
	"github.com/spf13/cobra"
)

// betaTableName is the display name of the beta table.
const betaTableName = "SFAT - Beta Function β(g)"

// NewBetaCommand creates the beta command.
func NewBetaCommand() *cobra.Command {
	opts := &RangeOptions{}

	cmd := &cobra.Command{
		Use:   "beta",
		Short: "Evaluate the beta function with log-periodic oscillations",
		Long: `Evaluate β(g) = -g + g³ + A·sin(2π·ln(g)/ln(φ)) over a range of couplings.

β(g) has no real value for g ≤ 0; those rows are reported as undefined
(null in JSON and YAML) instead of NaN.`,
		Example: `  # Default range: 26 points over [-0.5, 2.0]
  sfat beta

  # Only positive couplings
  sfat beta --start 0.1 --stop 3 --points 30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBeta(cmd, opts)
		},
	}

	addRangeFlags(cmd, opts, "g", "beta")
	return cmd
}

func runBeta(cmd *cobra.Command, opts *RangeOptions) error {
	cc := NewCommandContextWithoutModel(cmd)
	r := cc.Renderer
	c := cc.Constants()

	gs, err := opts.resolve(cmd, cc.Cfg.Beta).Domain()
	if err != nil {
		return fmt.Errorf("beta range: %w", err)
	}

	results := c.BetaTable(gs)
	undefined := 0
	for _, b := range results {
		if !b.Defined {
			undefined++
		}
	}
	cc.Logger.Debug("beta table computed", "rows", len(results), "undefined", undefined)

	if r.Structured() {
		return r.Encode(output.NewBetaOutput(c.BetaAmplitude, results))
	}

	rows := make([][]string, len(results))
	for i, b := range results {
		value := "undefined"
		if b.Defined {
			value = output.FormatFloat(b.Value, cc.Cfg.Precision)
		} else if r.EffectiveMode() == output.ModeText {
			value = r.Styles().Muted.Render(value)
		}
		rows[i] = []string{output.FormatFloat(b.G, cc.Cfg.Precision), value}
	}
	r.Grid(betaTableName, []string{"g", "β(g)"}, rows)
	return nil
}
