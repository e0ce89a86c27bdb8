// =============================================================================
// Bulk Claim Converter - Format Trees
// =============================================================================
//
// Intermediate, format-specific shapes produced by the converters. These exist
// only between parsing and normalization: the CSV tree keeps office, schedule,
// outcomes and matter starts as siblings; the XML tree nests the schedule
// under the office the way the wire format does. Both collapse into the
// canonical model in internal/normalize.
//
// =============================================================================

package claims

// FileSubmission is the closed sum of the two format trees. Exactly one of
// the two variant accessors returns non-nil.
type FileSubmission interface {
	// Format names the source format, e.g. for logs and errors.
	Format() string
}

// =============================================================================
// CSV TREE
// =============================================================================

// CsvSubmission is the parsed form of a line-oriented TXT/CSV upload.
type CsvSubmission struct {
	Office       CsvOffice
	Schedule     CsvSchedule
	Outcomes     []CsvOutcome
	MatterStarts []CsvMatterStart
}

func (CsvSubmission) Format() string { return "CSV" }

// CsvOffice is the single OFFICE record of a CSV file.
type CsvOffice struct {
	Account string
}

// CsvSchedule is the single SCHEDULE record of a CSV file.
type CsvSchedule struct {
	SubmissionPeriod string
	AreaOfLaw        string
	ScheduleNum      string
}

// CsvOutcome is one OUTCOME record: the raw NAME=VALUE cells of the row.
type CsvOutcome struct {
	Fields map[string]string
}

// CsvMatterStart is one MATTERSTARTS record. Reserved names fill the scalar
// slots; the single remaining NAME=VALUE cell is the ambiguous
// category-or-mediation code with its count, resolved during normalization.
type CsvMatterStart struct {
	Fields map[string]string
}

// =============================================================================
// XML TREE
// =============================================================================

// XmlSubmission is the parsed form of an XML upload.
type XmlSubmission struct {
	Office XmlOffice
}

func (XmlSubmission) Format() string { return "XML" }

// XmlOffice is the mandatory office element, holding its nested schedule.
type XmlOffice struct {
	Account  string
	Schedule XmlSchedule
}

// XmlSchedule is the mandatory schedule element with its repeated children.
type XmlSchedule struct {
	SubmissionPeriod string
	AreaOfLaw        string
	ScheduleNum      string
	Outcomes         []XmlOutcome
	MatterStarts     []MatterStart
	ImmigrationClr   []ImmigrationClrEntry
}

// XmlOutcome is one outcome element flattened into a field map: the
// matterType attribute plus every outcomeItem child, keyed by its name code.
type XmlOutcome struct {
	Fields map[string]string
}
