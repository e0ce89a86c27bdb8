// =============================================================================
// Bulk Claim Converter - Value Screening
// =============================================================================
//
// Screening for free-text values lifted from uploaded files before they are
// stored. Immigration CLR values are the only place the legacy formats allow
// arbitrary provider text, so they pass through here on the way into the
// canonical model.
//
// =============================================================================

package sanitize

import (
	"fmt"
	"strings"
)

// Sequences that indicate markup or encoded-markup injection attempts.
// Matching is case-insensitive.
var riskSequences = []string{"<", ">", "&#", "%3c", "%3e", "&lt;", "&gt;"}

// CheckValue returns an error when a value contains characters indicating an
// injection risk. Blank values are always acceptable.
func CheckValue(value string) error {
	lowered := strings.ToLower(value)
	for _, seq := range riskSequences {
		if strings.Contains(lowered, seq) {
			return fmt.Errorf("value %q contains disallowed sequence %q", value, seq)
		}
	}
	return nil
}
