package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/sfat-model/sfat/internal/cli/config"
)

// generateSchemaDocs generates the configuration reference.
func generateSchemaDocs(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := generateConfigurationDoc(outDir); err != nil {
		return fmt.Errorf("failed to generate configuration.md: %w", err)
	}
	log.Printf("  Generated configuration.md")

	return nil
}

// ConfigField represents a configuration key.
type ConfigField struct {
	Key         string
	Type        string
	Default     string
	Description string
}

// fieldDescriptions documents each koanf key.
var fieldDescriptions = map[string]string{
	"verbose":                        "Force debug logging",
	"output":                         "Output format: auto, text, markdown, json, yaml, csv",
	"log_level":                      "Log level: debug, info, warn, error",
	"precision":                      "Decimals shown in tables (-1 for the shortest exact form)",
	"constants.omega":                "Log-periodic angular frequency ω",
	"constants.kappa":                "Log-periodic coupling κ",
	"constants.lambda_life":          "Life-field coupling λ",
	"constants.x0":                   "Spatial origin x0 (must be positive)",
	"constants.t0":                   "Reference time t0 (must be positive)",
	"constants.planck_mass":          "Planck mass in GeV",
	"constants.bio_center":           "Center of the biological density",
	"constants.bio_width":            "Width of the biological density (must be positive)",
	"constants.beta_amplitude":       "Amplitude of the beta function oscillation",
	"constants.baseline":             "ΛCDM baseline of the cosmological prediction",
	"constants.correction_amplitude": "Relative amplitude of the cosmological correction",
	"space":                          "x range of the spatial table (start must be positive)",
	"time":                           "t range of the temporal table (start must be positive)",
	"beta":                           "g range of the beta table",
	"normalization":                  "Range rho_max is computed over (defaults to the space range)",
	"redshifts":                      "Redshifts used by the cosmology and run commands",
}

// getConfigSchema walks the koanf tags of the default configuration.
func getConfigSchema() []ConfigField {
	var fields []ConfigField
	collectFields(reflect.ValueOf(*config.Default()), "", &fields)
	return fields
}

func collectFields(v reflect.Value, prefix string, fields *[]ConfigField) {
	t := v.Type()
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("koanf")
		if tag == "" {
			continue
		}
		key := prefix + tag
		fv := v.Field(i)

		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				fv = reflect.Zero(fv.Type().Elem())
			} else {
				fv = fv.Elem()
			}
		}
		if fv.Kind() == reflect.Struct {
			collectFields(fv, key+".", fields)
			continue
		}

		*fields = append(*fields, ConfigField{
			Key:         key,
			Type:        fv.Type().String(),
			Default:     fmt.Sprintf("%v", fv.Interface()),
			Description: describe(key),
		})
	}
}

// describe finds the description of key or of its closest parent.
func describe(key string) string {
	for k := key; k != ""; {
		if d, ok := fieldDescriptions[k]; ok {
			return d
		}
		i := strings.LastIndex(k, ".")
		if i < 0 {
			break
		}
		k = k[:i]
	}
	return ""
}

// envName returns the environment variable that sets key.
func envName(key string) string {
	return config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "__"))
}

// generateConfigurationDoc generates the configuration reference page.
func generateConfigurationDoc(outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "sfat configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("sfat reads %s (or %s) from the current directory or any parent, "+
		"or the file given with %s. Values are layered from lowest to highest priority: "+
		"built-in defaults, the config file, environment variables, command-line flags.",
		InlineCode(config.ConfigFileName), InlineCode(config.ConfigFileNameAlt), InlineCode("--config")))

	w.Header(2, "Keys")
	var rows [][]string
	for _, f := range getConfigSchema() {
		def := f.Default
		if strings.HasPrefix(f.Key, "normalization.") {
			def = "space range"
		}
		rows = append(rows, []string{InlineCode(f.Key), InlineCode(envName(f.Key)), f.Type, InlineCode(def), f.Description})
	}
	w.Table([]string{"Key", "Environment", "Type", "Default", "Description"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `output: markdown
precision: 4

constants:
  kappa: 0.1
  bio_center: 2.0
  bio_width: 0.3

space:
  start: 0.5
  stop: 3.5
  points: 200

redshifts: [0.5, 0.7, 1.0]`)

	filename := filepath.Join(outDir, "configuration.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}
