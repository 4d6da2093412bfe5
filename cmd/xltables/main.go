// Package main provides the CLI entry point for xltables-go.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xltables",
		Short: "Extract titled tables from spreadsheet files",
		Long: `xltables-go scans the first sheet of an Excel or CSV file and splits it
into tables, using bold rows as titles and blank rows as separators.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newServeCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
