package commands

import (
	"fmt"

	"github.com/sfat-model/sfat/internal/cli/output"
	"github.com/sfat-model/sfat/pkg/sfat"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		Aliases: []string{"report"},
		Short:   "Run the complete model demonstration",
		Long: `Print the foundational pillars, then evaluate and display the spatial
table, the temporal table and the cosmological predictions for the
configured redshifts.

All values are computed before anything is written, so a domain error
leaves no partial output.`,
		Example: `  # Full report in the terminal
  sfat run

  # Everything as one JSON document
  sfat run -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd)
		},
	}
}

// report holds everything the run command displays.
type report struct {
	space       *sfat.Table
	time        *sfat.Table
	predictions []sfat.Prediction
}

func buildReport(cc *CommandContext) (*report, error) {
	xs, err := cc.Cfg.Space.Domain()
	if err != nil {
		return nil, fmt.Errorf("space range: %w", err)
	}
	ts, err := cc.Cfg.Time.Domain()
	if err != nil {
		return nil, fmt.Errorf("time range: %w", err)
	}

	space, err := cc.Model.SpatialTable(xs)
	if err != nil {
		return nil, err
	}
	tm, err := cc.Model.Constants.TemporalTable(ts)
	if err != nil {
		return nil, err
	}
	ps, err := cc.Model.Constants.Predictions(cc.Cfg.Redshifts)
	if err != nil {
		return nil, err
	}
	return &report{space: space, time: tm, predictions: ps}, nil
}

func runReport(cmd *cobra.Command) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	rep, err := buildReport(cc)
	if err != nil {
		return err
	}
	cc.Logger.Debug("report computed",
		"space_rows", rep.space.Len(),
		"time_rows", rep.time.Len(),
		"predictions", len(rep.predictions),
	)

	r := cc.Renderer
	if r.Structured() {
		return r.Encode(output.ReportOutput{
			Pillars:     output.PillarsOutput{Title: sfat.PillarsTitle, Pillars: sfat.Pillars()},
			Space:       output.NewTableOutput(rep.space),
			Time:        output.NewTableOutput(rep.time),
			Predictions: output.NewPredictionOutputs(rep.predictions),
		})
	}

	if err := renderPillars(cc); err != nil {
		return err
	}
	r.Println()
	if err := renderTable(cc, rep.space); err != nil {
		return err
	}
	r.Println()
	if err := renderTable(cc, rep.time); err != nil {
		return err
	}
	r.Println()
	r.Header(2, "Cosmological Predictions")
	return renderPredictions(cc, rep.predictions)
}
