// =============================================================================
// Bulk Claim Converter - Canonical Model
// =============================================================================
//
// BulkSubmissionDetails is the single format-agnostic shape every downstream
// collaborator sees. Every scalar has already been coerced: pointer fields are
// nil where the source field was blank or absent, never defaulted. A value of
// this type is either fully populated or the conversion that would have
// produced it failed.
//
// =============================================================================

package claims

import (
	"time"

	"github.com/shopspring/decimal"
)

// BulkSubmissionDetails is the normalized form of one uploaded file.
type BulkSubmissionDetails struct {
	Office         Office
	Schedule       Schedule
	Outcomes       []Outcome
	MatterStarts   []MatterStart
	ImmigrationClr []ImmigrationClrEntry
}

// Office is the submitting account. Exactly one per file.
type Office struct {
	Account string
}

// Schedule is the submission-period metadata. Exactly one per file.
type Schedule struct {
	SubmissionPeriod string
	AreaOfLaw        AreaOfLaw
	ScheduleNum      string
}

// Outcome is one claim-line record with every field coerced to its canonical
// type. Nil pointers mean the field was blank or absent in the source file.
type Outcome struct {
	// Case and matter identity.
	MatterType     string
	FeeCode        string
	CaseRefNumber  string
	CaseID         string
	CaseStageLevel string
	UFN            string
	OutcomeCode    string
	ClaimType      string
	TypeOfAdvice   string
	StageReached   string
	StandardFeeCat string
	SchemeID       string

	// Procurement.
	ProcurementArea string
	AccessPoint     string

	// Client identity.
	ClientForename     string
	ClientSurname      string
	UCN                string
	ClaRefNumber       string
	ClaExemption       string
	ExemptClientCode   string
	Gender             string
	Ethnicity          string
	Disability         string
	ClientType         string
	HomeOfficeClientNo string
	NINumber           string
	Postcode           string
	AITHearingCentre   string

	// Dates.
	CaseStartDate     *time.Time
	WorkConcludedDate *time.Time
	ClientDateOfBirth *time.Time
	TransferDate      *time.Time
	RepOrderDate      *time.Time
	SurgeryDate       *time.Time

	// Times and counts.
	AdviceTime         *int
	TravelTime         *int
	WaitingTime        *int
	MediationTime      *int
	NoOfClients        *int
	NoOfSurgeryClients *int

	// Monetary amounts.
	ProfitCost                  *decimal.Decimal
	DisbursementsAmount         *decimal.Decimal
	DisbursementsVat            *decimal.Decimal
	CounselCost                 *decimal.Decimal
	TravelCosts                 *decimal.Decimal
	AdjournedHearingFee         *decimal.Decimal
	ValueOfCosts                *decimal.Decimal
	DetentionTravelWaitingCosts *decimal.Decimal

	// Y/N flags. Nil means the flag was absent.
	VatIndicator            *bool
	LondonRate              *bool
	ToleranceIndicator      *bool
	LegacyCase              *bool
	PostalApplAccp          *bool
	DutySolicitor           *bool
	YouthCourt              *bool
	Scheme2000              *bool
	NrmAdvice               *bool
	EligibleClient          *bool
	IrcSurgery              *bool
	SubstantiveHearing      *bool
	AdditionalTravelPayment *bool
	ClientLegallyAided      *bool
	FollowOnWork            *bool
	ExceptionalCaseFunding  *bool
}

// MatterStart is one new-matter-start record. Exactly one of CategoryCode and
// MediationType is non-nil.
type MatterStart struct {
	ScheduleRef      string
	ProcurementArea  string
	AccessPoint      string
	DeliveryLocation string
	CategoryCode     *CategoryCode
	MediationType    *MediationType
	MatterStarts     int
}

// ImmigrationClrEntry is the free-form controlled-legal-representation data
// attached to an immigration schedule. Pair order follows document order.
type ImmigrationClrEntry struct {
	Pairs []ClrPair
}

// ClrPair is one code/value pair within an immigration CLR entry.
type ClrPair struct {
	Code  string
	Value string
}

// Get returns the value for a code and whether the code is present.
func (e ImmigrationClrEntry) Get(code string) (string, bool) {
	for _, p := range e.Pairs {
		if p.Code == code {
			return p.Value, true
		}
	}
	return "", false
}
