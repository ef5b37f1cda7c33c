// Package cli provides the command-line interface for sfat.
package cli

import (
	"context"
	"os"
	"strings"

	"github.com/sfat-model/sfat/internal/cli/commands"
	"github.com/sfat-model/sfat/internal/cli/config"
	"github.com/sfat-model/sfat/internal/cli/output"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sfat",
		Short: "SFAT - Golden-ratio fractal field model evaluator",
		Long: `sfat evaluates the closed-form formulas of the SFAT fractal field model
and prints the resulting tables.

The scale coordinate σ(x) = ln(x/x0)/ln(φ) drives a log-periodic potential,
a Gaussian "life" density coupled into the total potential, a beta function
with log-periodic oscillations and a corrected cosmological prediction
compared against ΛCDM.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger, err := config.NewLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = config.WithConfig(ctx, cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					logger.Info("using config file", "path", configFile)
				}
			}
			logger.Debug("configuration loaded",
				"output", cfg.OutputFormat,
				"precision", cfg.Precision,
				"redshifts", cfg.Redshifts,
			)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Golden-ratio fractal field model evaluator
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sfat.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json|yaml|csv)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output (forces debug logging)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().Int("precision", config.DefaultPrecision, "Decimals shown in tables (-1 for shortest exact form)")

	for _, name := range []string{"output", "verbose", "log-level", "precision"} {
		commands.BindConfigKey(rootCmd.PersistentFlags(), name, strings.ReplaceAll(name, "-", "_"))
	}

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewPillarsCommand())
	rootCmd.AddCommand(commands.NewSpaceCommand())
	rootCmd.AddCommand(commands.NewTimeCommand())
	rootCmd.AddCommand(commands.NewBetaCommand())
	rootCmd.AddCommand(commands.NewCosmologyCommand())
	rootCmd.AddCommand(commands.NewConstantsCommand())
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.NewRenderer(os.Stderr, os.Stderr, output.ModeText).Error(err.Error())
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sfat.

To load completions:

Bash:
  $ source <(sfat completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ sfat completion bash > /etc/bash_completion.d/sfat
  # macOS:
  $ sfat completion bash > $(brew --prefix)/etc/bash_completion.d/sfat

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ sfat completion zsh > "${fpath[1]}/_sfat"

Fish:
  $ sfat completion fish | source

  # To load completions for each session, execute once:
  $ sfat completion fish > ~/.config/fish/completions/sfat.fish

PowerShell:
  PS> sfat completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
	return cmd
}
