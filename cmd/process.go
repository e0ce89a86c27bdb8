// =============================================================================
// Bulk Claim Converter - Process Command
// =============================================================================
//
// The 'process' command converts every submission file in the input directory.
//
// PROCESSING PIPELINE:
//   1. Load the configuration and set up logging
//   2. Discover submission files (.txt, .csv, .xml) in the input directory
//   3. For each file (concurrently):
//      a. Parse into the format tree
//      b. Normalize into the canonical submission model
//      c. Store the submission and publish its identifier
//   4. Archive successfully processed files
//   5. Write an XLSX summary report
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/openlegalaid/bulkclaim/internal/config"
	"github.com/openlegalaid/bulkclaim/internal/converter"
	"github.com/openlegalaid/bulkclaim/internal/csvparser"
	"github.com/openlegalaid/bulkclaim/internal/queue"
	"github.com/openlegalaid/bulkclaim/internal/report"
	"github.com/openlegalaid/bulkclaim/internal/store"
	"github.com/openlegalaid/bulkclaim/internal/xmlparser"
	"github.com/openlegalaid/bulkclaim/pkg/utils"
)

// dryRun converts files without storing, publishing or archiving anything.
var dryRun bool

// noArchive leaves processed inputs in place.
var noArchive bool

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert submission files into the canonical model",
	Long: `The process command scans the input directory for bulk claim submission
files, converts each into the canonical submission model, stores it and
publishes its identifier for downstream processing.

Files are processed concurrently and independently; a file that fails to
convert does not affect the others. On success the input file is moved to the
archive directory. An XLSX summary of the run is written to the report
directory.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Convert files without storing, publishing or archiving",
	)

	processCmd.Flags().BoolVar(
		&noArchive,
		"no-archive",
		false,
		"Leave processed files in the input directory",
	)
}

// runProcess orchestrates one conversion run.
func runProcess() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: CONFIGURATION AND LOGGING
	// =========================================================================

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	fm := utils.NewFileManager(cfg.InputDir, cfg.ArchiveDir)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	inputFiles, err := fm.DiscoverInputFiles([]string{"txt", "csv", "xml"})
	if err != nil {
		return fmt.Errorf("failed to discover input files: %w", err)
	}

	if len(inputFiles) == 0 {
		logger.Info("no submission files found", "inputDir", cfg.InputDir)
		return nil
	}
	logger.Info("starting conversion run", "files", len(inputFiles))

	// =========================================================================
	// STEP 3: PROCESS FILES CONCURRENTLY
	// =========================================================================

	st := store.NewMemoryStore()
	var publisher queue.Publisher = queue.NewLogPublisher(logger, queue.NewMemoryPublisher())
	registry := converter.NewRegistry(csvparser.New(logger), xmlparser.New(logger))
	pipeline := converter.NewPipeline(registry, st, publisher, logger)

	var wg sync.WaitGroup
	results := make(chan converter.Result, len(inputFiles))
	sem := make(chan struct{}, cfg.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)

		go func(filePath string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if dryRun {
				results <- dryRunFile(pipeline, filePath)
				return
			}
			results <- pipeline.Run(filePath)
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS AND ARCHIVE
	// =========================================================================

	var collected []converter.Result
	var successCount, errorCount int

	for result := range results {
		if result.Success {
			successCount++
			fmt.Printf("  ✓ %s (%d outcomes, %d matter starts)\n",
				filepath.Base(result.FilePath), result.Stats.Outcomes, result.Stats.MatterStarts)

			if !dryRun && !noArchive {
				if archived, err := fm.ArchiveInputFile(result.FilePath); err != nil {
					logger.Warn("failed to archive processed file", "file", result.FilePath, "error", err)
				} else {
					logger.Debug("archived processed file", "file", result.FilePath, "archivedAs", archived)
				}
			}
		} else {
			errorCount++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}
		collected = append(collected, result)
	}

	// =========================================================================
	// STEP 5: SUMMARY REPORT
	// =========================================================================

	if !dryRun {
		reportPath := filepath.Join(cfg.ReportDir,
			fmt.Sprintf("conversion_summary_%s.xlsx", startTime.Format("20060102_150405")))
		if err := report.WriteSummary(reportPath, collected); err != nil {
			logger.Warn("failed to write summary report", "error", err)
		} else {
			logger.Info("summary report written", "path", reportPath)
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", len(inputFiles))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Errors:          %d\n", errorCount)
	fmt.Printf("Time elapsed:    %s\n", elapsed)

	if errorCount > 0 && !cfg.ContinueOnError {
		return fmt.Errorf("%d of %d file(s) failed to process", errorCount, len(inputFiles))
	}
	return nil
}

// dryRunFile converts a file without touching the store or the publisher.
func dryRunFile(pipeline *converter.Pipeline, filePath string) converter.Result {
	result := converter.Result{FilePath: filePath}

	file, err := os.Open(filePath)
	if err != nil {
		result.Error = err
		return result
	}
	defer file.Close()

	details, err := pipeline.Convert(filepath.Base(filePath), file)
	if err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	result.Stats = converter.Stats{
		Outcomes:       len(details.Outcomes),
		MatterStarts:   len(details.MatterStarts),
		ImmigrationClr: len(details.ImmigrationClr),
	}
	return result
}

// buildLogger constructs the process-wide logger from the configured level,
// bumped to debug when --verbose is set.
func buildLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, nil
}
