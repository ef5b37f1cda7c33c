package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTimeCommand creates the time command.
func NewTimeCommand() *cobra.Command {
	opts := &RangeOptions{}

	cmd := &cobra.Command{
		Use:   "time",
		Short: "Evaluate the temporal evolution of σ(t)",
		Long: `Evaluate σ(t) = ln(t/t0)/ln(φ) over an evenly spaced range of t.

Every t must be positive.`,
		Example: `  # Default range: 200 points over [1, 10]
  sfat time

  # Ten points as JSON
  sfat time --points 10 -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTime(cmd, opts)
		},
	}

	addRangeFlags(cmd, opts, "t", "time")
	return cmd
}

func runTime(cmd *cobra.Command, opts *RangeOptions) error {
	cc := NewCommandContextWithoutModel(cmd)

	ts, err := opts.resolve(cmd, cc.Cfg.Time).Domain()
	if err != nil {
		return fmt.Errorf("time range: %w", err)
	}

	tbl, err := cc.Constants().TemporalTable(ts)
	if err != nil {
		return err
	}
	cc.Logger.Debug("temporal table computed", "rows", tbl.Len())

	return renderTable(cc, tbl)
}
