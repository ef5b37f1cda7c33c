package commands

import (
	"log/slog"

	"github.com/sfat-model/sfat/internal/cli/config"
	"github.com/sfat-model/sfat/internal/cli/output"
	"github.com/sfat-model/sfat/pkg/sfat"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Model    *sfat.Model
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a ready model.
// The density normalization constant is computed here, before any command
// evaluates a formula that depends on it.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cc := NewCommandContextWithoutModel(cmd)

	m, err := cc.Cfg.Model()
	if err != nil {
		return nil, err
	}
	cc.Model = m

	norm := cc.Cfg.NormalizationRange()
	cc.Logger.Debug("density normalized",
		"rho_max", m.Density.RhoMax(),
		"center", m.Density.Center(),
		"width", m.Density.Width(),
		"domain_start", norm.Start,
		"domain_stop", norm.Stop,
		"domain_points", norm.Points,
	)
	return cc, nil
}

// NewCommandContextWithoutModel creates a CommandContext without a model.
// Useful for commands that only need the constants.
func NewCommandContextWithoutModel(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Constants returns the configured model constants.
func (cc *CommandContext) Constants() sfat.Constants {
	if cc.Model != nil {
		return cc.Model.Constants
	}
	return cc.Cfg.Constants.Constants()
}

// RangeOptions holds the sampling flags shared by the table commands.
type RangeOptions struct {
	Start  float64
	Stop   float64
	Points int
}

// ConfigKeyAnnotation is the flag annotation naming the config key a flag
// overrides.
const ConfigKeyAnnotation = "sfat_config_key"

// BindConfigKey records on fs that flag overrides the config key.
func BindConfigKey(fs *pflag.FlagSet, flag, key string) {
	_ = fs.SetAnnotation(flag, ConfigKeyAnnotation, []string{key})
}

// addRangeFlags adds --start, --stop and --points overriding section.*.
func addRangeFlags(cmd *cobra.Command, opts *RangeOptions, variable, section string) {
	fs := cmd.Flags()
	fs.Float64Var(&opts.Start, "start", 0, "First "+variable+" value (default from config)")
	fs.Float64Var(&opts.Stop, "stop", 0, "Last "+variable+" value (default from config)")
	fs.IntVarP(&opts.Points, "points", "n", 0, "Number of evenly spaced samples (default from config)")
	for _, name := range []string{"start", "stop", "points"} {
		BindConfigKey(fs, name, section+"."+name)
	}
}

// resolve overrides base with the range flags that were explicitly set.
func (o *RangeOptions) resolve(cmd *cobra.Command, base config.RangeConfig) config.RangeConfig {
	if cmd.Flags().Changed("start") {
		base.Start = o.Start
	}
	if cmd.Flags().Changed("stop") {
		base.Stop = o.Stop
	}
	if cmd.Flags().Changed("points") {
		base.Points = o.Points
	}
	return base
}

// renderTable writes a derived table in the renderer's mode.
func renderTable(cc *CommandContext, t *sfat.Table) error {
	r := cc.Renderer
	if r.Structured() {
		return r.Encode(output.NewTableOutput(t))
	}
	r.Grid(t.Name, t.Headers(), output.TableCells(t, cc.Cfg.Precision))
	return nil
}
