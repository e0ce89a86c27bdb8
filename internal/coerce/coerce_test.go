package coerce

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBoolean(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    *bool
		wantErr bool
	}{
		{name: "blank is nil", token: "", want: nil},
		{name: "whitespace is nil", token: "   ", want: nil},
		{name: "Y is true", token: "Y", want: ptr(true)},
		{name: "N is false", token: "N", want: ptr(false)},
		{name: "lowercase y rejected", token: "y", wantErr: true},
		{name: "YES rejected", token: "YES", wantErr: true},
		{name: "numeric rejected", token: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBoolean("VAT Indicator", tt.token)
			if tt.wantErr {
				require.Error(t, err)
				var convErr *ConversionError
				require.ErrorAs(t, err, &convErr)
				assert.Equal(t, "VAT Indicator", convErr.Field)
				assert.Equal(t, tt.token, convErr.Value)
				assert.Contains(t, err.Error(), "VAT Indicator")
				assert.Contains(t, err.Error(), tt.token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToInteger(t *testing.T) {
	got, err := ToInteger("adviceTime", "45")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 45, *got)

	got, err = ToInteger("adviceTime", "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestToInteger_FailureContext(t *testing.T) {
	_, err := ToInteger("adviceTime", "forty-five")
	require.Error(t, err)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "adviceTime", convErr.Field)
	assert.Equal(t, "forty-five", convErr.Value)
	// The underlying strconv message must survive wrapping.
	require.NotNil(t, convErr.Err)
	assert.Contains(t, err.Error(), convErr.Err.Error())
}

func TestToDecimal(t *testing.T) {
	got, err := ToDecimal("profitCost", "199.50")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(decimal.RequireFromString("199.50")))

	got, err = ToDecimal("profitCost", " ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ToDecimal("profitCost", "12.3.4")
	require.Error(t, err)
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "profitCost", convErr.Field)
}

func TestToDate(t *testing.T) {
	got, err := ToDate("caseStartDate", "03/04/2025")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC), *got)

	got, err = ToDate("caseStartDate", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ToDate("caseStartDate", "2025-04-03")
	require.Error(t, err)
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "caseStartDate", convErr.Field)
	assert.Equal(t, "2025-04-03", convErr.Value)
	require.NotNil(t, convErr.Err)
}

func ptr[T any](v T) *T { return &v }
