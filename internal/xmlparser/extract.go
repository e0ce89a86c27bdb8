// =============================================================================
// Bulk Claim Converter - XML Record Extractors
// =============================================================================
//
// Extractors turning the repeated code/value children of the decoded document
// into the shapes the normalizer consumes. Each reports its own field context
// on a missing code so the error names the record family it came from.
//
// =============================================================================

package xmlparser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openlegalaid/bulkclaim/internal/claims"
	"github.com/openlegalaid/bulkclaim/internal/sanitize"
)

// Reserved matter-start codes filling the scalar slots. Any other code is the
// ambiguous category-or-mediation token.
const (
	codeScheduleRef      = "SCHEDULE_REF"
	codeProcurementArea  = "PROCUREMENT_AREA"
	codeAccessPoint      = "ACCESS_POINT"
	codeDeliveryLocation = "DELIVERY_LOCATION"
)

// extractOutcome flattens an outcome element into a field map: the matterType
// attribute joins the outcomeItem children under the same vocabulary the CSV
// format uses.
func extractOutcome(o outcome) (claims.XmlOutcome, error) {
	fields := make(map[string]string, len(o.Items)+1)
	if o.MatterType != "" {
		fields["MATTER_TYPE"] = o.MatterType
	}

	for _, item := range o.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return claims.XmlOutcome{}, fmt.Errorf("outcome item is missing its name code")
		}
		fields[name] = strings.TrimSpace(item.Value)
	}

	return claims.XmlOutcome{Fields: fields}, nil
}

// extractMatterStart builds one typed matter-start record from a
// newMatterStarts group. Exactly one non-reserved code must resolve to a
// category code or mediation type; its value is the matter-start count.
func extractMatterStart(list matterStartList) (claims.MatterStart, error) {
	var ms claims.MatterStart

	seenCode := false
	for _, entry := range list.Entries {
		if entry.Code == nil {
			return claims.MatterStart{}, fmt.Errorf("matter start entry is missing its code attribute")
		}
		code := strings.TrimSpace(*entry.Code)
		value := strings.TrimSpace(entry.Value)

		switch code {
		case codeScheduleRef:
			ms.ScheduleRef = value
		case codeProcurementArea:
			ms.ProcurementArea = value
		case codeAccessPoint:
			ms.AccessPoint = value
		case codeDeliveryLocation:
			ms.DeliveryLocation = value
		default:
			if seenCode {
				return claims.MatterStart{}, fmt.Errorf("matter start entry has more than one matter code")
			}
			seenCode = true

			resolved, ok := claims.ResolveMatterCode(code)
			if !ok {
				return claims.MatterStart{}, fmt.Errorf(
					"matter start code %q is neither a category code nor a mediation type", code)
			}
			count, err := strconv.Atoi(value)
			if err != nil {
				return claims.MatterStart{}, fmt.Errorf(
					"invalid matter starts count %q for code %q: %w", value, code, err)
			}
			ms.CategoryCode = resolved.Category
			ms.MediationType = resolved.Mediation
			ms.MatterStarts = count
		}
	}

	if !seenCode {
		return claims.MatterStart{}, fmt.Errorf("matter start entry has no category or mediation code")
	}
	return ms, nil
}

// extractImmigrationClr builds one CLR entry, preserving document order.
// Values are screened for injection risk before they reach the canonical
// model.
func extractImmigrationClr(clr immigrationClr) (claims.ImmigrationClrEntry, error) {
	entry := claims.ImmigrationClrEntry{Pairs: make([]claims.ClrPair, 0, len(clr.Entries))}

	for _, e := range clr.Entries {
		if e.Code == nil {
			return claims.ImmigrationClrEntry{}, fmt.Errorf("immigration CLR entry is missing its code attribute")
		}
		value := strings.TrimSpace(e.Value)
		if err := sanitize.CheckValue(value); err != nil {
			return claims.ImmigrationClrEntry{}, fmt.Errorf("immigration CLR code %q: %w", *e.Code, err)
		}
		entry.Pairs = append(entry.Pairs, claims.ClrPair{Code: strings.TrimSpace(*e.Code), Value: value})
	}

	return entry, nil
}
