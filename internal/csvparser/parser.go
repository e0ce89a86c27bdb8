// =============================================================================
// Bulk Claim Converter - CSV Parser Module
// =============================================================================
//
// Parser for the line-oriented legacy upload format. Each line is one record:
// the first cell names the record type, every remaining cell is a NAME=VALUE
// pair. Provider systems emit these files with embedded non-printable
// characters and inconsistent cell counts, so every cell is scrubbed and
// trimmed before interpretation.
//
// Structural rules enforced here:
//   - exactly one OFFICE record and exactly one SCHEDULE record per file
//   - OUTCOME and MATTERSTARTS records accumulate in file order
//   - record types outside the recognized set are logged and skipped, so a
//     newer file revision does not break older readers
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/openlegalaid/bulkclaim/internal/claims"
)

// =============================================================================
// RECORD TYPES
// =============================================================================

// recordType is the first cell of a row, after scrubbing.
type recordType string

const (
	recordOffice       recordType = "OFFICE"
	recordSchedule     recordType = "SCHEDULE"
	recordOutcome      recordType = "OUTCOME"
	recordMatterStarts recordType = "MATTERSTARTS"
)

// row is one parsed line: its record type and the decomposed NAME=VALUE map.
type row struct {
	kind   recordType
	fields map[string]string
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter parses line-oriented TXT/CSV submission files. It holds no
// per-file state and is safe to share across concurrent conversions.
type Converter struct {
	logger *slog.Logger
}

// New returns a CSV converter logging through the given logger.
func New(logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{logger: logger}
}

// Handles reports whether this converter owns the given extension. The two
// legacy text extensions are reserved for this format.
func (c *Converter) Handles(ext claims.FileExtension) bool {
	return ext == claims.ExtensionTXT || ext == claims.ExtensionCSV
}

// Convert reads the whole stream and builds the CSV submission tree. Any
// structural violation aborts the conversion; there is no partial result.
func (c *Converter) Convert(r io.Reader) (claims.FileSubmission, error) {
	reader := csv.NewReader(r)
	// Rows have a varying number of NAME=VALUE cells.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	// Accumulator scoped to this one call.
	var (
		office       *claims.CsvOffice
		schedule     *claims.CsvSchedule
		outcomes     []claims.CsvOutcome
		matterStarts []claims.CsvMatterStart
	)

	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if isRowEmpty(cells) {
			continue
		}

		parsed, known, err := parseRow(cells)
		if err != nil {
			return nil, err
		}
		if !known {
			// Forward-compatibility allowance: newer file revisions may add
			// record types this reader does not understand.
			c.logger.Debug("skipping unrecognized record header", "header", scrub(cells[0]))
			continue
		}

		switch parsed.kind {
		case recordOffice:
			if office != nil {
				return nil, errors.New("Multiple offices found")
			}
			office = &claims.CsvOffice{Account: parsed.fields["ACCOUNT"]}

		case recordSchedule:
			if schedule != nil {
				return nil, errors.New("Multiple schedules found")
			}
			schedule = &claims.CsvSchedule{
				SubmissionPeriod: parsed.fields["SUBMISSION_PERIOD"],
				AreaOfLaw:        parsed.fields["AREA_OF_LAW"],
				ScheduleNum:      parsed.fields["SCHEDULE_NUM"],
			}

		case recordOutcome:
			outcomes = append(outcomes, claims.CsvOutcome{Fields: parsed.fields})

		case recordMatterStarts:
			matterStarts = append(matterStarts, claims.CsvMatterStart{Fields: parsed.fields})
		}
	}

	if office == nil {
		return nil, errors.New("No office found")
	}
	if schedule == nil {
		return nil, errors.New("No schedule found")
	}

	return claims.CsvSubmission{
		Office:       *office,
		Schedule:     *schedule,
		Outcomes:     outcomes,
		MatterStarts: matterStarts,
	}, nil
}

// =============================================================================
// ROW PARSING
// =============================================================================

// parseRow classifies a raw line and decomposes its cells. The second return
// is false for an unrecognized record header.
func parseRow(cells []string) (row, bool, error) {
	header := strings.TrimSpace(scrub(cells[0]))

	kind := recordType(header)
	switch kind {
	case recordOffice, recordSchedule, recordOutcome, recordMatterStarts:
	default:
		return row{}, false, nil
	}

	fields, err := parseFields(kind, cells[1:])
	if err != nil {
		return row{}, true, err
	}
	return row{kind: kind, fields: fields}, true, nil
}

// parseFields turns the NAME=VALUE cells of a row into a map. Blank cells are
// skipped; a non-blank cell without exactly one name/value split is fatal.
func parseFields(kind recordType, cells []string) (map[string]string, error) {
	fields := make(map[string]string, len(cells))

	for _, cell := range cells {
		cell = strings.TrimSpace(scrub(cell))
		if cell == "" {
			continue
		}

		name, value, found := strings.Cut(cell, "=")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("malformed cell %q in %s record: expected NAME=VALUE", cell, kind)
		}
		fields[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	return fields, nil
}

// scrub removes non-printable characters. Legacy provider exports embed
// control bytes mid-cell, which would otherwise defeat header comparison.
func scrub(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}

// isRowEmpty reports whether every cell of a row is blank after scrubbing.
func isRowEmpty(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(scrub(cell)) != "" {
			return false
		}
	}
	return true
}
