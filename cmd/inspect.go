// =============================================================================
// Bulk Claim Converter - Inspect Command
// =============================================================================
//
// The 'inspect' command parses a single submission file and dumps both the
// format tree and the canonical model, for debugging provider uploads that
// fail conversion.
//
// COMMAND USAGE:
//   bulkclaim inspect <file>
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/openlegalaid/bulkclaim/internal/converter"
	"github.com/openlegalaid/bulkclaim/internal/csvparser"
	"github.com/openlegalaid/bulkclaim/internal/normalize"
	"github.com/openlegalaid/bulkclaim/internal/xmlparser"
)

// rawOnly stops inspection after the format tree, before normalization.
var rawOnly bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Parse a single submission file and dump its structure",
	Long: `The inspect command runs the conversion for one file and prints the parsed
structures instead of storing anything. It first dumps the format tree (the
CSV or XML shape as parsed), then the canonical submission model it
normalizes into.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(
		&rawOnly,
		"raw",
		false,
		"Dump only the format tree, skip normalization",
	)
}

func runInspect(filePath string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ext, err := converter.InferExtension(filepath.Base(filePath))
	if err != nil {
		return err
	}

	registry := converter.NewRegistry(csvparser.New(logger), xmlparser.New(logger))
	conv, err := registry.ConverterFor(ext)
	if err != nil {
		return err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	tree, err := conv.Convert(file)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

	fmt.Printf("=== Format tree (%s) ===\n", tree.Format())
	dumper.Dump(tree)

	if rawOnly {
		return nil
	}

	details, err := normalize.ToCanonical(tree)
	if err != nil {
		return fmt.Errorf("failed to normalize %s: %w", filePath, err)
	}

	fmt.Println("=== Canonical submission ===")
	dumper.Dump(details)
	return nil
}
