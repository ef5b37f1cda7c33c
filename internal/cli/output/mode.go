// Package output renders command results for terminals, scripts and agents.
//
// A Renderer picks one of several output modes. In auto mode a terminal gets
// styled text and anything else gets markdown, which reads well both in a
// pager and when piped into another tool.
package output

import (
	"fmt"
	"strings"
)

// OutputMode selects how results are written.
type OutputMode string

// Supported output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
	ModeCSV      OutputMode = "csv"
)

// Modes lists the accepted --output values.
func Modes() []string {
	return []string{
		string(ModeAuto), string(ModeText), string(ModeMarkdown),
		string(ModeJSON), string(ModeYAML), string(ModeCSV),
	}
}

// Mode converts a user supplied string to an OutputMode.
// Unknown values fall back to ModeAuto; use ParseMode to reject them.
func Mode(s string) OutputMode {
	m, err := ParseMode(s)
	if err != nil {
		return ModeAuto
	}
	return m
}

// ParseMode converts s to an OutputMode, accepting "md" and "yml" as aliases.
func ParseMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "text":
		return ModeText, nil
	case "markdown", "md":
		return ModeMarkdown, nil
	case "json":
		return ModeJSON, nil
	case "yaml", "yml":
		return ModeYAML, nil
	case "csv":
		return ModeCSV, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected one of %s)", s, strings.Join(Modes(), ", "))
}
