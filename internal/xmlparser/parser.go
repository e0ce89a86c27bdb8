// =============================================================================
// Bulk Claim Converter - XML Parser Module
// =============================================================================
//
// Parser for the hierarchical XML upload format. The document nests one
// office element holding one schedule element, which holds repeated outcome,
// newMatterStarts and immigrationCLR children. Repetition is handled by the
// slice fields of the decode structs, so a child appearing once or many times
// yields the same shape.
//
// The office/schedule exactly-one invariant is structural here: the decoder
// fails on a missing mandatory element rather than counting records the way
// the CSV path does.
//
// =============================================================================

package xmlparser

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"

	"github.com/openlegalaid/bulkclaim/internal/claims"
)

// =============================================================================
// DOCUMENT SHAPE
// =============================================================================

// Pointer fields mark mandatory elements: a nil after decoding means the
// element was absent.
type document struct {
	XMLName xml.Name `xml:"submission"`
	Office  *office  `xml:"office"`
}

type office struct {
	Account  string    `xml:"account,attr"`
	Schedule *schedule `xml:"schedule"`
}

type schedule struct {
	SubmissionPeriod string            `xml:"submissionPeriod,attr"`
	AreaOfLaw        string            `xml:"areaOfLaw,attr"`
	ScheduleNum      string            `xml:"scheduleNum,attr"`
	Outcomes         []outcome         `xml:"outcome"`
	MatterStarts     []matterStartList `xml:"newMatterStarts"`
	ImmigrationClr   []immigrationClr  `xml:"immigrationCLR"`
}

type outcome struct {
	MatterType string        `xml:"matterType,attr"`
	Items      []outcomeItem `xml:"outcomeItem"`
}

type outcomeItem struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// matterStartList is one newMatterStarts element: a group of code/value pairs
// describing a single matter-start record.
type matterStartList struct {
	Entries []codedValue `xml:"matterStart"`
}

// immigrationClr is one immigrationCLR element: a group of code/value pairs
// with no further structure.
type immigrationClr struct {
	Entries []codedValue `xml:"immCLRData"`
}

// codedValue is a child element carrying a mandatory code attribute and
// optional text content.
type codedValue struct {
	Code  *string `xml:"code,attr"`
	Value string  `xml:",chardata"`
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter parses XML submission files. Stateless and safe for concurrent
// use.
type Converter struct {
	logger *slog.Logger
}

// New returns an XML converter logging through the given logger.
func New(logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{logger: logger}
}

// Handles reports whether this converter owns the given extension.
func (c *Converter) Handles(ext claims.FileExtension) bool {
	return ext == claims.ExtensionXML
}

// Convert decodes the whole stream and builds the XML submission tree.
func (c *Converter) Convert(r io.Reader) (claims.FileSubmission, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode submission document: %w", err)
	}

	if doc.Office == nil {
		return nil, fmt.Errorf("mandatory office element is missing")
	}
	if doc.Office.Schedule == nil {
		return nil, fmt.Errorf("mandatory schedule element is missing under office")
	}

	sched := doc.Office.Schedule
	c.logger.Debug("decoded submission document",
		"outcomes", len(sched.Outcomes),
		"matterStarts", len(sched.MatterStarts),
		"immigrationCLR", len(sched.ImmigrationClr))

	outcomes := make([]claims.XmlOutcome, 0, len(sched.Outcomes))
	for _, o := range sched.Outcomes {
		extracted, err := extractOutcome(o)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, extracted)
	}

	matterStarts := make([]claims.MatterStart, 0, len(sched.MatterStarts))
	for _, ms := range sched.MatterStarts {
		extracted, err := extractMatterStart(ms)
		if err != nil {
			return nil, err
		}
		matterStarts = append(matterStarts, extracted)
	}

	clrEntries := make([]claims.ImmigrationClrEntry, 0, len(sched.ImmigrationClr))
	for _, clr := range sched.ImmigrationClr {
		extracted, err := extractImmigrationClr(clr)
		if err != nil {
			return nil, err
		}
		clrEntries = append(clrEntries, extracted)
	}

	return claims.XmlSubmission{
		Office: claims.XmlOffice{
			Account: doc.Office.Account,
			Schedule: claims.XmlSchedule{
				SubmissionPeriod: sched.SubmissionPeriod,
				AreaOfLaw:        sched.AreaOfLaw,
				ScheduleNum:      sched.ScheduleNum,
				Outcomes:         outcomes,
				MatterStarts:     matterStarts,
				ImmigrationClr:   clrEntries,
			},
		},
	}, nil
}
