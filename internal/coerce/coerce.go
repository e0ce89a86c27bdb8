// =============================================================================
// Bulk Claim Converter - Field Coercion Library
// =============================================================================
//
// Pure helpers turning free-text tokens from the legacy file formats into
// typed values. The contract is uniform across all four coercions:
//   - a blank token is nil, never a zero value
//   - a non-blank, non-conforming token is a ConversionError carrying the
//     field name and the rejected raw value; a default is never substituted
//   - low-level parser errors (strconv, time, decimal) are always wrapped,
//     never returned bare
//
// Boolean failures carry the human-readable field label ("VAT Indicator");
// numeric and date failures carry the internal field name.
//
// =============================================================================

package coerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day/month/year pattern the legacy file family uses for
// every date field.
const DateLayout = "02/01/2006"

// ConversionError is the single failure shape for all field coercions.
type ConversionError struct {
	// Field is the name attached to the failure: the human-readable label
	// for booleans, the internal field name for everything else.
	Field string

	// Value is the raw rejected token.
	Value string

	// Err is the underlying parser error, when one exists.
	Err error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid value %q for field %s: %v", e.Value, e.Field, e.Err)
	}
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// ToBoolean coerces a Y/N token. Blank is nil, "Y" is true, "N" is false and
// anything else fails with the human-readable label attached.
func ToBoolean(label, token string) (*bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	switch token {
	case "Y":
		v := true
		return &v, nil
	case "N":
		v := false
		return &v, nil
	}
	return nil, &ConversionError{Field: label, Value: token}
}

// ToInteger coerces a base-10 integer token. Blank is nil.
func ToInteger(field, token string) (*int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return nil, &ConversionError{Field: field, Value: token, Err: err}
	}
	return &v, nil
}

// ToDecimal coerces a decimal token, preserving exact monetary precision.
// Blank is nil.
func ToDecimal(field, token string) (*decimal.Decimal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(token)
	if err != nil {
		return nil, &ConversionError{Field: field, Value: token, Err: err}
	}
	return &v, nil
}

// ToDate coerces a DD/MM/YYYY token. Blank is nil.
func ToDate(field, token string) (*time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	v, err := time.Parse(DateLayout, token)
	if err != nil {
		return nil, &ConversionError{Field: field, Value: token, Err: err}
	}
	return &v, nil
}
