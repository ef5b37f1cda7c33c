package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sfat-model/sfat/internal/cli"
	"github.com/sfat-model/sfat/internal/cli/commands"
	"github.com/sfat-model/sfat/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateCLIDocs generates CLI documentation from Cobra commands.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	// Create output directory
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Get root command
	rootCmd := cli.NewRootCmd()

	// Generate index page
	if err := generateCLIIndex(rootCmd, outDir); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	log.Printf("  Generated index.md")

	// Generate page for each command
	for _, cmd := range rootCmd.Commands() {
		if skipCommand(cmd) {
			continue
		}
		if err := generateCommandPage(cmd, outDir); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
		log.Printf("  Generated %s.md", cmd.Name())
	}

	return nil
}

// generateCLIIndex generates the CLI overview page.
func generateCLIIndex(rootCmd *cobra.Command, outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("CLI Reference", "Command-line interface reference for sfat")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(rootCmd.Long)

	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/sfat-model/sfat/cmd/sfat@latest")

	w.Header(2, "Basic Usage")
	w.CodeBlock("bash", "sfat <command> [options]")

	w.Header(2, "Commands")
	headers := []string{"Command", "Description"}
	var rows [][]string
	for _, cmd := range rootCmd.Commands() {
		if skipCommand(cmd) {
			continue
		}
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table(headers, rows)

	w.Header(2, "Global Options")
	w.Paragraph("These flags are available for all commands:")
	writeFlagsTable(w, rootCmd.PersistentFlags())

	w.Header(2, "Environment Variables")
	w.Paragraph(fmt.Sprintf("Every configuration key can be set with the %s prefix. "+
		"Nested keys are joined with a double underscore, e.g. %s. "+
		"See the configuration reference for the full list.",
		InlineCode(config.EnvPrefix), InlineCode(config.EnvPrefix+"CONSTANTS__KAPPA")))
	w.Paragraph("Command-line flags take precedence over environment variables, which take precedence over the config file.")

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Success"},
		{InlineCode("1"), "Error (check stderr for details)"},
	})

	w.Header(2, "Getting Help")
	w.CodeBlock("bash", `# General help
sfat help
sfat --help

# Command-specific help
sfat space --help`)

	filename := filepath.Join(outDir, "index.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

// skipCommand reports whether cmd is left out of the reference.
func skipCommand(cmd *cobra.Command) bool {
	return cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete"
}

// generateCommandPage writes <name>.md for one command.
func generateCommandPage(cmd *cobra.Command, outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", "sfat "+strings.TrimPrefix(cmd.UseLine(), "sfat "))

	if len(cmd.Aliases) > 0 {
		aliases := make([]string, len(cmd.Aliases))
		for i, a := range cmd.Aliases {
			aliases[i] = InlineCode("sfat " + a)
		}
		w.Header(2, "Aliases")
		w.BulletList(aliases)
	}

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}

	if keys := boundConfigKeys(cmd.LocalFlags()); len(keys) > 0 {
		w.Header(2, "Configuration")
		w.Paragraph("Without the flags above, values come from these configuration keys:")
		rows := make([][]string, len(keys))
		for i, b := range keys {
			rows[i] = []string{InlineCode("--" + b.flag), InlineCode(b.key), InlineCode(envName(b.key)), defaultFor(b.key)}
		}
		w.Table([]string{"Flag", "Key", "Environment", "Default"}, rows)
	}

	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}

	return os.WriteFile(filepath.Join(outDir, cmd.Name()+".md"), w.Bytes(), 0600)
}

// flagBinding pairs a flag with the config key it overrides.
type flagBinding struct {
	flag string
	key  string
}

// boundConfigKeys lists the flags annotated with a config key.
func boundConfigKeys(flags *pflag.FlagSet) []flagBinding {
	var out []flagBinding
	flags.VisitAll(func(f *pflag.Flag) {
		if keys := f.Annotations[commands.ConfigKeyAnnotation]; len(keys) > 0 {
			out = append(out, flagBinding{flag: f.Name, key: keys[0]})
		}
	})
	return out
}

// defaultFor returns the default value of a config key as inline code.
func defaultFor(key string) string {
	for _, f := range getConfigSchema() {
		if f.Key == key {
			return InlineCode(f.Default)
		}
	}
	return ""
}

// writeFlagsTable writes one row per visible flag.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		short := ""
		if f.Shorthand != "" {
			short = InlineCode("-" + f.Shorthand)
		}
		def := f.DefValue
		if def != "" && def != "[]" {
			def = InlineCode(def)
		}
		key := ""
		if keys := f.Annotations[commands.ConfigKeyAnnotation]; len(keys) > 0 {
			key = InlineCode(keys[0])
		}
		rows = append(rows, []string{InlineCode("--" + f.Name), short, f.Value.Type(), def, key, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Option", "Short", "Type", "Default", "Config key", "Description"}, rows)
}

// dedent strips the indentation shared by every non-blank line.
func dedent(s string) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	indent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, l := range lines {
		if len(l) >= indent && indent > 0 {
			lines[i] = l[indent:]
		} else {
			lines[i] = strings.TrimSpace(l)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
