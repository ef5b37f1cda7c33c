// Package main provides the CLI for the SFAT formula evaluator.
package main

import (
	"os"

	"github.com/sfat-model/sfat/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
