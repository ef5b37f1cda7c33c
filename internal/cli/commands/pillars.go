package commands

import (
	"github.com/sfat-model/sfat/internal/cli/output"
	"github.com/sfat-model/sfat/pkg/sfat"
	"github.com/spf13/cobra"
)

// NewPillarsCommand creates the pillars command.
func NewPillarsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pillars",
		Short: "List the 13 foundational pillars of the theory",
		Long:  `Print the foundational statements the SFAT formulas are built on.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderPillars(NewCommandContextWithoutModel(cmd))
		},
	}
}

func renderPillars(cc *CommandContext) error {
	r := cc.Renderer
	lines := sfat.Pillars()

	switch r.EffectiveMode() {
	case output.ModeJSON, output.ModeYAML:
		return r.Encode(output.PillarsOutput{Title: sfat.PillarsTitle, Pillars: lines})
	case output.ModeCSV:
		rows := make([][]string, len(lines))
		for i, l := range lines {
			rows[i] = []string{l}
		}
		r.Grid("", []string{"pillar"}, rows)
	case output.ModeText:
		r.Println(r.Styles().Title.Render(sfat.PillarsTitle))
		for _, l := range lines {
			r.Println(l)
		}
	default:
		r.Println(sfat.PillarsTitle)
		r.Println()
		for _, l := range lines {
			r.Println(l)
		}
	}
	return nil
}
