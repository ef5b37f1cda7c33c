package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSpaceCommand creates the space command.
func NewSpaceCommand() *cobra.Command {
	opts := &RangeOptions{}

	cmd := &cobra.Command{
		Use:   "space",
		Short: "Evaluate the spatial model with life coupling",
		Long: `Evaluate σ(x), the log-periodic potential, the normalized biological
density and the total potential over an evenly spaced range of x.

Columns: x, σ(x), V_log, ρ_bio, life_term, L_total.
Every x must be positive; σ(x) is undefined at or below zero.`,
		Example: `  # Default range: 200 points over [0.5, 3.5]
  sfat space

  # A coarser grid as CSV
  sfat space --points 13 --output csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSpace(cmd, opts)
		},
	}

	addRangeFlags(cmd, opts, "x", "space")
	return cmd
}

func runSpace(cmd *cobra.Command, opts *RangeOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	xs, err := opts.resolve(cmd, cc.Cfg.Space).Domain()
	if err != nil {
		return fmt.Errorf("space range: %w", err)
	}

	tbl, err := cc.Model.SpatialTable(xs)
	if err != nil {
		return err
	}
	cc.Logger.Debug("spatial table computed", "rows", tbl.Len())

	return renderTable(cc, tbl)
}
