package report

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/openlegalaid/bulkclaim/internal/converter"
)

func TestWriteSummary(t *testing.T) {
	id := uuid.New()
	results := []converter.Result{
		{
			FilePath:     "off1_jan25.txt",
			SubmissionID: id,
			Success:      true,
			Stats:        converter.Stats{Outcomes: 3, MatterStarts: 1},
		},
		{
			FilePath: "bad.txt",
			Error:    assert.AnError,
		},
	}

	path := filepath.Join(t.TempDir(), "summary.xlsx")
	require.NoError(t, WriteSummary(path, results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)

	assert.Equal(t, "File", rows[0][0])
	assert.Equal(t, "off1_jan25.txt", rows[1][0])
	assert.Equal(t, id.String(), rows[1][1])
	assert.Equal(t, "OK", rows[1][2])

	assert.Equal(t, "bad.txt", rows[2][0])
	assert.Equal(t, "FAILED", rows[2][2])
	assert.Contains(t, rows[2][6], assert.AnError.Error())

	// Totals row.
	totals := rows[len(rows)-1]
	assert.Contains(t, totals[0], "2 files")
	assert.Contains(t, totals[0], "1 failed")
	assert.Equal(t, "3", totals[3])
}
