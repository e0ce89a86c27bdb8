// =============================================================================
// Bulk Claim Converter - Domain Enumerations
// =============================================================================
//
// Fixed vocabularies of the bulk claim file formats. These are
// closed sets: the converters fail loudly on anything outside them rather than
// guessing. Parse helpers return (value, bool) so callers can distinguish an
// expected miss from a programming error.
//
// =============================================================================

package claims

import "strings"

// =============================================================================
// FILE EXTENSIONS
// =============================================================================

// FileExtension identifies the on-disk format of an uploaded submission file.
type FileExtension string

const (
	ExtensionTXT FileExtension = "TXT"
	ExtensionCSV FileExtension = "CSV"
	ExtensionXML FileExtension = "XML"
)

// ParseFileExtension resolves an uppercase extension token against the fixed
// set. The second return is false for anything outside the set.
func ParseFileExtension(s string) (FileExtension, bool) {
	switch FileExtension(strings.ToUpper(s)) {
	case ExtensionTXT:
		return ExtensionTXT, true
	case ExtensionCSV:
		return ExtensionCSV, true
	case ExtensionXML:
		return ExtensionXML, true
	}
	return "", false
}

// String returns the wire form of the extension.
func (e FileExtension) String() string { return string(e) }

// =============================================================================
// AREA OF LAW
// =============================================================================

// AreaOfLaw is the schedule-level area-of-law code.
type AreaOfLaw string

const (
	AreaLegalHelp  AreaOfLaw = "LEGAL HELP"
	AreaCrimeLower AreaOfLaw = "CRIME LOWER"
	AreaMediation  AreaOfLaw = "MEDIATION"
)

// ParseAreaOfLaw resolves an area-of-law token against the fixed set.
func ParseAreaOfLaw(s string) (AreaOfLaw, bool) {
	switch AreaOfLaw(strings.ToUpper(strings.TrimSpace(s))) {
	case AreaLegalHelp:
		return AreaLegalHelp, true
	case AreaCrimeLower:
		return AreaCrimeLower, true
	case AreaMediation:
		return AreaMediation, true
	}
	return "", false
}

func (a AreaOfLaw) String() string { return string(a) }

// =============================================================================
// MATTER-START CATEGORY CODES
// =============================================================================

// CategoryCode is a civil new-matter-start category.
type CategoryCode string

// Category codes as they appear on the wire. The set is closed; an unknown
// code falls through to mediation-type resolution and then to a parse error.
const (
	CategoryAAP CategoryCode = "AAP" // actions against the police etc.
	CategoryCOM CategoryCode = "COM" // community care
	CategoryCON CategoryCode = "CON" // consumer
	CategoryCRM CategoryCode = "CRM" // crime
	CategoryDEB CategoryCode = "DEB" // debt
	CategoryDIS CategoryCode = "DIS" // discrimination
	CategoryEDU CategoryCode = "EDU" // education
	CategoryELA CategoryCode = "ELA" // early legal advice
	CategoryEMP CategoryCode = "EMP" // employment
	CategoryFAM CategoryCode = "FAM" // family
	CategoryHOU CategoryCode = "HOU" // housing
	CategoryIMM CategoryCode = "IMM" // immigration
	CategoryMED CategoryCode = "MED" // clinical negligence
	CategoryMHE CategoryCode = "MHE" // mental health
	CategoryMIS CategoryCode = "MIS" // miscellaneous
	CategoryPUB CategoryCode = "PUB" // public law
	CategoryWB  CategoryCode = "WB"  // welfare benefits
)

var categoryCodes = map[CategoryCode]struct{}{
	CategoryAAP: {}, CategoryCOM: {}, CategoryCON: {}, CategoryCRM: {},
	CategoryDEB: {}, CategoryDIS: {}, CategoryEDU: {}, CategoryELA: {},
	CategoryEMP: {}, CategoryFAM: {}, CategoryHOU: {}, CategoryIMM: {},
	CategoryMED: {}, CategoryMHE: {}, CategoryMIS: {}, CategoryPUB: {},
	CategoryWB: {},
}

// ParseCategoryCode resolves a matter-start code by exact match.
func ParseCategoryCode(s string) (CategoryCode, bool) {
	code := CategoryCode(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := categoryCodes[code]
	return code, ok
}

func (c CategoryCode) String() string { return string(c) }

// =============================================================================
// MEDIATION TYPES
// =============================================================================

// MediationType is a mediation matter-start type. On-wire codes are truncated
// relative to the full name, so resolution is by prefix, not exact match.
type MediationType string

// Declaration order matters: prefix resolution returns the first member whose
// name starts with the wire code plus an underscore.
const (
	MediationMDASSole            MediationType = "MDAS_SOLE"
	MediationMDACAllIssuesCo     MediationType = "MDAC_ALL_ISSUES_CO"
	MediationMDACAllIssuesSole   MediationType = "MDAC_ALL_ISSUES_SOLE"
	MediationMDPCPropertyFinCo   MediationType = "MDPC_PROPERTY_FINANCE_CO"
	MediationMDPCPropertyFinSole MediationType = "MDPC_PROPERTY_FINANCE_SOLE"
	MediationMDCCChildOnlyCo     MediationType = "MDCC_CHILD_ONLY_CO"
	MediationMDCCChildOnlySole   MediationType = "MDCC_CHILD_ONLY_SOLE"
)

var mediationTypes = []MediationType{
	MediationMDASSole,
	MediationMDACAllIssuesCo,
	MediationMDACAllIssuesSole,
	MediationMDPCPropertyFinCo,
	MediationMDPCPropertyFinSole,
	MediationMDCCChildOnlyCo,
	MediationMDCCChildOnlySole,
}

// ParseMediationType resolves a truncated wire code (e.g. "MDAC") to the
// first mediation type whose name starts with the code plus "_". A full name
// also resolves, which keeps round-tripped data parseable.
func ParseMediationType(s string) (MediationType, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for _, mt := range mediationTypes {
		if string(mt) == code || strings.HasPrefix(string(mt), code+"_") {
			return mt, true
		}
	}
	return "", false
}

func (m MediationType) String() string { return string(m) }
