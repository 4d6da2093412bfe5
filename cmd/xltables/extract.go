package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xltables-go/pkg/xltables"
	"github.com/ukaji3/xltables-go/pkg/xltables/output"
)

type extractFlags struct {
	outputPath string
	pretty     bool
	kind       string
}

func newExtractCommand() *cobra.Command {
	var flags extractFlags

	cmd := &cobra.Command{
		Use:   "extract [input.xlsx|input.csv]",
		Short: "Extract tables from a file and print them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&flags.kind, "kind", "auto", "Input kind: auto, workbook, csv")

	return cmd
}

func runExtract(cmd *cobra.Command, inputPath string, flags extractFlags) error {
	kind, ok := xltables.ParseKind(flags.kind)
	if !ok {
		return fmt.Errorf("invalid kind: %s (must be auto, workbook, or csv)", flags.kind)
	}

	result, err := xltables.ExtractFile(cmd.Context(), inputPath, xltables.Options{Kind: kind})
	if err != nil {
		writeFailure(cmd, err, flags.pretty)
		if errors.Is(err, xltables.ErrFileNotFound) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
		return fmt.Errorf("extraction failed: %w", err)
	}

	resp := xltables.Assemble(filepath.Base(inputPath), strings.ToLower(filepath.Ext(inputPath)), result)
	jsonData, err := output.ToJSON(resp, flags.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if flags.outputPath != "" {
		if err := os.WriteFile(flags.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

// writeFailure prints the error contract to stderr.
func writeFailure(cmd *cobra.Command, err error, pretty bool) {
	message := "Error reading file"
	if errors.Is(err, xltables.ErrFileNotFound) {
		message = "File not found"
	}
	if data, jerr := output.ErrorToJSON(xltables.Failure(message, err), pretty); jerr == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), string(data))
	}
}
