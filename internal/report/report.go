// =============================================================================
// Bulk Claim Converter - Processing Report
// =============================================================================
//
// XLSX summary of a processing run, one row per input file. Operations teams
// consume these alongside the archived inputs, so the report carries the
// stored submission identifier and the full error text for failed files.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/openlegalaid/bulkclaim/internal/converter"
)

const sheetName = "Summary"

var headers = []string{
	"File", "Submission ID", "Status", "Outcomes", "Matter Starts", "Immigration CLR", "Error",
}

// WriteSummary writes the processing summary workbook to path.
func WriteSummary(path string, results []converter.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	for i, result := range results {
		row := i + 2

		status := "OK"
		errText := ""
		submissionID := ""
		if result.Success {
			submissionID = result.SubmissionID.String()
		} else {
			status = "FAILED"
			if result.Error != nil {
				errText = result.Error.Error()
			}
		}

		values := []interface{}{
			result.FilePath,
			submissionID,
			status,
			result.Stats.Outcomes,
			result.Stats.MatterStarts,
			result.Stats.ImmigrationClr,
			errText,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write summary row %d: %w", row, err)
			}
		}
	}

	// Totals row under the per-file rows.
	totalsRow := len(results) + 3
	totals := []interface{}{
		fmt.Sprintf("TOTAL (%d files, %d failed)",
			len(results),
			lo.CountBy(results, func(r converter.Result) bool { return !r.Success })),
		"",
		"",
		lo.SumBy(results, func(r converter.Result) int { return r.Stats.Outcomes }),
		lo.SumBy(results, func(r converter.Result) int { return r.Stats.MatterStarts }),
		lo.SumBy(results, func(r converter.Result) int { return r.Stats.ImmigrationClr }),
		"",
	}
	for col, value := range totals {
		cell, err := excelize.CoordinatesToCellName(col+1, totalsRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("failed to write totals row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}
	return nil
}
