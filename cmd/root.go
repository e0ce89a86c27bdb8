// =============================================================================
// Bulk Claim Converter - Root Command
// =============================================================================
//
// COBRA CLI STRUCTURE:
//   rootCmd (bulkclaim)
//   ├── processCmd (bulkclaim process)
//   ├── inspectCmd (bulkclaim inspect)
//   └── versionCmd (bulkclaim version)
//
// The root command owns the global flags (--config, --verbose) shared by all
// subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file, overridable via --config.
var cfgFile string

// verbose forces debug-level logging regardless of the configured level.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bulkclaim",
	Short: "Bulk Claim Converter - Ingest provider bulk claim submission files",

	Long: `Bulk Claim Converter ingests bulk claim submission files uploaded by
legal aid providers and converts them into the canonical submission model
used by downstream validation and payment processing.

Two upload formats are supported:
  - Legacy delimited text (.txt/.csv) with office, schedule, outcome and
    matter start record rows
  - Bulk-load XML (.xml) with nested office/schedule/outcome elements

Key Features:
  - Format detection by file extension with a pluggable converter registry
  - Field-level coercion of dates, numbers, money and Y/N indicators
  - Matter start code resolution across category codes and mediation types
  - Concurrent processing with per-file isolation
  - Automatic archival of successfully processed files and an XLSX summary

Example Usage:
  bulkclaim process                    # Convert all files in the input directory
  bulkclaim process --config ./my.yaml # Use a custom configuration file
  bulkclaim inspect submission.xml     # Dump the parsed structure of one file`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called once, by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
