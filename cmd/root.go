// Package cmd implements the CLI commands for DocForge using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docforge",
	Short: "DocForge — generate structured documents and slide decks from a topic",
	Long: `DocForge turns a topic into a finished PDF document or slide deck.
Content comes from a local text-generation API or from a reference web
page, is distributed across the requested number of pages or slides, and
is rendered to PDF.

Usage:
  docforge document <topic> [flags]
  docforge deck <topic> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
