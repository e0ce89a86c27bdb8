package csvparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlegalaid/bulkclaim/internal/claims"
)

const minimalFile = `OFFICE,ACCOUNT=OFF1
SCHEDULE,SUBMISSION_PERIOD=JAN-25,AREA_OF_LAW=LEGAL HELP,SCHEDULE_NUM=OFF1/LEGAL
`

func convert(t *testing.T, input string) (claims.CsvSubmission, error) {
	t.Helper()
	sub, err := New(nil).Convert(strings.NewReader(input))
	if err != nil {
		return claims.CsvSubmission{}, err
	}
	csvSub, ok := sub.(claims.CsvSubmission)
	require.True(t, ok, "expected a CsvSubmission")
	return csvSub, nil
}

func TestConvert_MinimalValidFile(t *testing.T) {
	sub, err := convert(t, minimalFile)
	require.NoError(t, err)

	assert.Equal(t, "OFF1", sub.Office.Account)
	assert.Equal(t, "JAN-25", sub.Schedule.SubmissionPeriod)
	assert.Equal(t, "LEGAL HELP", sub.Schedule.AreaOfLaw)
	assert.Equal(t, "OFF1/LEGAL", sub.Schedule.ScheduleNum)
	assert.Empty(t, sub.Outcomes)
	assert.Empty(t, sub.MatterStarts)
}

func TestConvert_OutcomeAndMatterStartRows(t *testing.T) {
	input := minimalFile +
		"OUTCOME,MATTER_TYPE=FAMA:FADV,FEE_CODE=LHFA,ADVICE_TIME=45\n" +
		"OUTCOME,MATTER_TYPE=IMCA:IRVL,FEE_CODE=IMXC\n" +
		"MATTERSTARTS,SCHEDULE_REF=OFF1/LEGAL,PROCUREMENT_AREA=PA001,AAP=5\n"

	sub, err := convert(t, input)
	require.NoError(t, err)

	require.Len(t, sub.Outcomes, 2)
	assert.Equal(t, "FAMA:FADV", sub.Outcomes[0].Fields["MATTER_TYPE"])
	assert.Equal(t, "45", sub.Outcomes[0].Fields["ADVICE_TIME"])
	assert.Equal(t, "IMXC", sub.Outcomes[1].Fields["FEE_CODE"])

	require.Len(t, sub.MatterStarts, 1)
	assert.Equal(t, "OFF1/LEGAL", sub.MatterStarts[0].Fields["SCHEDULE_REF"])
	assert.Equal(t, "5", sub.MatterStarts[0].Fields["AAP"])
}

func TestConvert_StructuralViolations(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "duplicate office",
			input:   minimalFile + "OFFICE,ACCOUNT=OFF2\n",
			wantMsg: "Multiple offices found",
		},
		{
			name:    "duplicate schedule",
			input:   minimalFile + "SCHEDULE,SUBMISSION_PERIOD=FEB-25\n",
			wantMsg: "Multiple schedules found",
		},
		{
			name:    "missing office",
			input:   "SCHEDULE,SUBMISSION_PERIOD=JAN-25\n",
			wantMsg: "No office found",
		},
		{
			name:    "missing schedule",
			input:   "OFFICE,ACCOUNT=OFF1\n",
			wantMsg: "No schedule found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := convert(t, tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestConvert_UnrecognizedHeaderSkipped(t *testing.T) {
	input := "TRAILER,COUNT=2\n" + minimalFile

	sub, err := convert(t, input)
	require.NoError(t, err)
	assert.Equal(t, "OFF1", sub.Office.Account)
}

func TestConvert_MalformedCell(t *testing.T) {
	input := minimalFile + "OUTCOME,MATTER_TYPE\n"

	_, err := convert(t, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUTCOME")
	assert.Contains(t, err.Error(), "MATTER_TYPE")
}

func TestConvert_StripsNonPrintableCharacters(t *testing.T) {
	// A control byte embedded in the header and in a value.
	input := "OFF\x02ICE,ACCOUNT=OF\x1fF1\n" +
		"SCHEDULE,SUBMISSION_PERIOD=JAN-25,AREA_OF_LAW=LEGAL HELP,SCHEDULE_NUM=OFF1/LEGAL\n"

	sub, err := convert(t, input)
	require.NoError(t, err)
	assert.Equal(t, "OFF1", sub.Office.Account)
}

func TestConvert_BlankCellsSkipped(t *testing.T) {
	input := "OFFICE,,ACCOUNT=OFF1,\n" +
		"SCHEDULE,SUBMISSION_PERIOD=JAN-25,AREA_OF_LAW=LEGAL HELP,SCHEDULE_NUM=OFF1/LEGAL\n"

	sub, err := convert(t, input)
	require.NoError(t, err)
	assert.Equal(t, "OFF1", sub.Office.Account)
}

func TestHandles(t *testing.T) {
	c := New(nil)
	assert.True(t, c.Handles(claims.ExtensionTXT))
	assert.True(t, c.Handles(claims.ExtensionCSV))
	assert.False(t, c.Handles(claims.ExtensionXML))
}
