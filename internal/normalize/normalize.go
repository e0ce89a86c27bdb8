// =============================================================================
// Bulk Claim Converter - Canonical Mapper
// =============================================================================
//
// Normalization of either format tree into the one canonical
// BulkSubmissionDetails shape. Dispatch over the closed FileSubmission sum is
// exhaustive: a variant this mapper does not know is a programming error, not
// a data error.
//
// Field coercion is applied uniformly to every outcome scalar. Boolean
// failures carry the human-readable label (a Y/N flag is the likeliest
// data-entry mistake to reach a provider); numeric and date failures carry
// the internal field name for diagnostics. That asymmetry is deliberate and
// mirrored in the coercion library's contract.
//
// =============================================================================

package normalize

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openlegalaid/bulkclaim/internal/claims"
	"github.com/openlegalaid/bulkclaim/internal/coerce"
)

// ToCanonical collapses a format-specific submission tree into the canonical
// model. Every scalar is coerced; the result is fully typed or the error is
// the only thing returned.
func ToCanonical(sub claims.FileSubmission) (claims.BulkSubmissionDetails, error) {
	switch s := sub.(type) {
	case claims.CsvSubmission:
		return fromCsv(s)
	case claims.XmlSubmission:
		return fromXml(s)
	default:
		// Unreachable with the current closed set of format trees.
		return claims.BulkSubmissionDetails{}, fmt.Errorf("unsupported submission variant %T", sub)
	}
}

// =============================================================================
// CSV MAPPING
// =============================================================================

func fromCsv(sub claims.CsvSubmission) (claims.BulkSubmissionDetails, error) {
	schedule, err := mapSchedule(sub.Schedule.SubmissionPeriod, sub.Schedule.AreaOfLaw, sub.Schedule.ScheduleNum)
	if err != nil {
		return claims.BulkSubmissionDetails{}, err
	}

	outcomes := make([]claims.Outcome, 0, len(sub.Outcomes))
	for _, o := range sub.Outcomes {
		mapped, err := mapOutcome(o.Fields)
		if err != nil {
			return claims.BulkSubmissionDetails{}, err
		}
		outcomes = append(outcomes, mapped)
	}

	matterStarts := make([]claims.MatterStart, 0, len(sub.MatterStarts))
	for _, ms := range sub.MatterStarts {
		mapped, err := mapCsvMatterStart(ms.Fields)
		if err != nil {
			return claims.BulkSubmissionDetails{}, err
		}
		matterStarts = append(matterStarts, mapped)
	}

	return claims.BulkSubmissionDetails{
		Office:       claims.Office{Account: sub.Office.Account},
		Schedule:     schedule,
		Outcomes:     outcomes,
		MatterStarts: matterStarts,
		// The legacy CSV format has no immigration CLR record type.
		ImmigrationClr: []claims.ImmigrationClrEntry{},
	}, nil
}

// mapCsvMatterStart resolves a raw MATTERSTARTS row. Reserved names fill the
// scalar slots; the single remaining cell carries the ambiguous code and the
// matter count, disambiguated with the same two-step lookup the XML extractor
// uses.
func mapCsvMatterStart(fields map[string]string) (claims.MatterStart, error) {
	ms := claims.MatterStart{
		ScheduleRef:      fields["SCHEDULE_REF"],
		ProcurementArea:  fields["PROCUREMENT_AREA"],
		AccessPoint:      fields["ACCESS_POINT"],
		DeliveryLocation: fields["DELIVERY_LOCATION"],
	}

	seenCode := false
	for name, value := range fields {
		switch name {
		case "SCHEDULE_REF", "PROCUREMENT_AREA", "ACCESS_POINT", "DELIVERY_LOCATION":
			continue
		}

		if seenCode {
			return claims.MatterStart{}, fmt.Errorf("matter start record has more than one matter code")
		}
		seenCode = true

		resolved, ok := claims.ResolveMatterCode(name)
		if !ok {
			return claims.MatterStart{}, fmt.Errorf(
				"matter start code %q is neither a category code nor a mediation type", name)
		}

		count, err := coerce.ToInteger(name, value)
		if err != nil {
			return claims.MatterStart{}, fmt.Errorf("invalid matter starts count for code %q: %w", name, err)
		}
		if count == nil {
			return claims.MatterStart{}, fmt.Errorf("missing matter starts count for code %q", name)
		}

		ms.CategoryCode = resolved.Category
		ms.MediationType = resolved.Mediation
		ms.MatterStarts = *count
	}

	if !seenCode {
		return claims.MatterStart{}, fmt.Errorf("matter start record has no category or mediation code")
	}
	return ms, nil
}

// =============================================================================
// XML MAPPING
// =============================================================================

func fromXml(sub claims.XmlSubmission) (claims.BulkSubmissionDetails, error) {
	sched := sub.Office.Schedule

	schedule, err := mapSchedule(sched.SubmissionPeriod, sched.AreaOfLaw, sched.ScheduleNum)
	if err != nil {
		return claims.BulkSubmissionDetails{}, err
	}

	outcomes := make([]claims.Outcome, 0, len(sched.Outcomes))
	for _, o := range sched.Outcomes {
		mapped, err := mapOutcome(o.Fields)
		if err != nil {
			return claims.BulkSubmissionDetails{}, err
		}
		outcomes = append(outcomes, mapped)
	}

	// Matter starts and immigration CLR are already typed by the extractors.
	matterStarts := sched.MatterStarts
	if matterStarts == nil {
		matterStarts = []claims.MatterStart{}
	}
	clr := sched.ImmigrationClr
	if clr == nil {
		clr = []claims.ImmigrationClrEntry{}
	}

	return claims.BulkSubmissionDetails{
		Office:         claims.Office{Account: sub.Office.Account},
		Schedule:       schedule,
		Outcomes:       outcomes,
		MatterStarts:   matterStarts,
		ImmigrationClr: clr,
	}, nil
}

// =============================================================================
// SHARED MAPPING
// =============================================================================

func mapSchedule(period, areaOfLaw, scheduleNum string) (claims.Schedule, error) {
	area, ok := claims.ParseAreaOfLaw(areaOfLaw)
	if !ok {
		return claims.Schedule{}, fmt.Errorf("invalid area of law %q", areaOfLaw)
	}
	return claims.Schedule{
		SubmissionPeriod: period,
		AreaOfLaw:        area,
		ScheduleNum:      scheduleNum,
	}, nil
}

// mapOutcome coerces every scalar of one outcome record. The field tables
// keep the wire-name/destination pairing in one place per type.
func mapOutcome(fields map[string]string) (claims.Outcome, error) {
	var out claims.Outcome

	for _, f := range []struct {
		key string
		dst *string
	}{
		{"MATTER_TYPE", &out.MatterType},
		{"FEE_CODE", &out.FeeCode},
		{"CASE_REF_NUMBER", &out.CaseRefNumber},
		{"CASE_ID", &out.CaseID},
		{"CASE_STAGE_LEVEL", &out.CaseStageLevel},
		{"UFN", &out.UFN},
		{"OUTCOME_CODE", &out.OutcomeCode},
		{"CLAIM_TYPE", &out.ClaimType},
		{"TYPE_OF_ADVICE", &out.TypeOfAdvice},
		{"STAGE_REACHED", &out.StageReached},
		{"STANDARD_FEE_CAT", &out.StandardFeeCat},
		{"SCHEME_ID", &out.SchemeID},
		{"PROCUREMENT_AREA", &out.ProcurementArea},
		{"ACCESS_POINT", &out.AccessPoint},
		{"CLIENT_FORENAME", &out.ClientForename},
		{"CLIENT_SURNAME", &out.ClientSurname},
		{"UCN", &out.UCN},
		{"CLA_REF_NUMBER", &out.ClaRefNumber},
		{"CLA_EXEMPTION", &out.ClaExemption},
		{"EXEMPT_CLIENT_CODE", &out.ExemptClientCode},
		{"GENDER", &out.Gender},
		{"ETHNICITY", &out.Ethnicity},
		{"DISABILITY", &out.Disability},
		{"CLIENT_TYPE", &out.ClientType},
		{"HOME_OFFICE_CLIENT_NO", &out.HomeOfficeClientNo},
		{"NI_NUMBER", &out.NINumber},
		{"POSTCODE", &out.Postcode},
		{"AIT_HEARING_CENTRE", &out.AITHearingCentre},
	} {
		*f.dst = fields[f.key]
	}

	for _, f := range []struct {
		field string
		key   string
		dst   **time.Time
	}{
		{"caseStartDate", "CASE_START_DATE", &out.CaseStartDate},
		{"workConcludedDate", "WORK_CONCLUDED_DATE", &out.WorkConcludedDate},
		{"clientDateOfBirth", "CLIENT_DATE_OF_BIRTH", &out.ClientDateOfBirth},
		{"transferDate", "TRANSFER_DATE", &out.TransferDate},
		{"repOrderDate", "REP_ORDER_DATE", &out.RepOrderDate},
		{"surgeryDate", "SURGERY_DATE", &out.SurgeryDate},
	} {
		v, err := coerce.ToDate(f.field, fields[f.key])
		if err != nil {
			return claims.Outcome{}, err
		}
		*f.dst = v
	}

	for _, f := range []struct {
		field string
		key   string
		dst   **int
	}{
		{"adviceTime", "ADVICE_TIME", &out.AdviceTime},
		{"travelTime", "TRAVEL_TIME", &out.TravelTime},
		{"waitingTime", "WAITING_TIME", &out.WaitingTime},
		{"mediationTime", "MEDIATION_TIME", &out.MediationTime},
		{"noOfClients", "NO_OF_CLIENTS", &out.NoOfClients},
		{"noOfSurgeryClients", "NO_OF_SURGERY_CLIENTS", &out.NoOfSurgeryClients},
	} {
		v, err := coerce.ToInteger(f.field, fields[f.key])
		if err != nil {
			return claims.Outcome{}, err
		}
		*f.dst = v
	}

	for _, f := range []struct {
		field string
		key   string
		dst   **decimal.Decimal
	}{
		{"profitCost", "PROFIT_COST", &out.ProfitCost},
		{"disbursementsAmount", "DISBURSEMENTS_AMOUNT", &out.DisbursementsAmount},
		{"disbursementsVat", "DISBURSEMENTS_VAT", &out.DisbursementsVat},
		{"counselCost", "COUNSEL_COST", &out.CounselCost},
		{"travelCosts", "TRAVEL_COSTS", &out.TravelCosts},
		{"adjournedHearingFee", "ADJOURNED_HEARING_FEE", &out.AdjournedHearingFee},
		{"valueOfCosts", "VALUE_OF_COSTS", &out.ValueOfCosts},
		{"detentionTravelWaitingCosts", "DETENTION_TRAVEL_WAITING_COSTS", &out.DetentionTravelWaitingCosts},
	} {
		v, err := coerce.ToDecimal(f.field, fields[f.key])
		if err != nil {
			return claims.Outcome{}, err
		}
		*f.dst = v
	}

	for _, f := range []struct {
		label string
		key   string
		dst   **bool
	}{
		{"VAT Indicator", "VAT_INDICATOR", &out.VatIndicator},
		{"London/Non-London Rate", "LONDON_NONLONDON_RATE", &out.LondonRate},
		{"Tolerance Indicator", "TOLERANCE_INDICATOR", &out.ToleranceIndicator},
		{"Legacy Case", "LEGACY_CASE", &out.LegacyCase},
		{"Postal Application Accepted", "POSTAL_APPL_ACCP", &out.PostalApplAccp},
		{"Duty Solicitor", "DUTY_SOLICITOR", &out.DutySolicitor},
		{"Youth Court", "YOUTH_COURT", &out.YouthCourt},
		{"Scheme 2000", "SCHEME_2000", &out.Scheme2000},
		{"NRM Advice", "NRM_ADVICE", &out.NrmAdvice},
		{"Eligible Client", "ELIGIBLE_CLIENT", &out.EligibleClient},
		{"IRC Surgery", "IRC_SURGERY", &out.IrcSurgery},
		{"Substantive Hearing", "SUBSTANTIVE_HEARING", &out.SubstantiveHearing},
		{"Additional Travel Payment", "ADDITIONAL_TRAVEL_PAYMENT", &out.AdditionalTravelPayment},
		{"Client Legally Aided", "CLIENT_LEGALLY_AIDED", &out.ClientLegallyAided},
		{"Follow On Work", "FOLLOW_ON_WORK", &out.FollowOnWork},
		{"Exceptional Case Funding", "EXCL_CASE_FUNDING", &out.ExceptionalCaseFunding},
	} {
		v, err := coerce.ToBoolean(f.label, fields[f.key])
		if err != nil {
			return claims.Outcome{}, err
		}
		*f.dst = v
	}

	return out, nil
}
