// file: internals/features/reports/salary/service/export_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildSpreadsheet(t *testing.T) {
	rows := sampleRows()
	totals := ComputeTotals(rows)

	buf, err := BuildSpreadsheet(rows, totals)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Batch Salary"

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Lecture Name", header)

	first, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, rows[0].LectureName, first)

	// Totals land one row below the last data row.
	label, err := f.GetCellValue(sheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "Totals", label)

	totalSalary, err := f.GetCellValue(sheet, "H5")
	require.NoError(t, err)
	assert.Equal(t, "12000", totalSalary)
}

func TestBuildSpreadsheetEmpty(t *testing.T) {
	buf, err := BuildSpreadsheet(nil, ComputeTotals(nil))
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue("Batch Salary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Totals", label)
}

func TestBuildPDF(t *testing.T) {
	rows := sampleRows()
	buf, err := BuildPDF(rows, ComputeTotals(rows))
	require.NoError(t, err)
	require.Greater(t, buf.Len(), 4)
	assert.Equal(t, "%PDF", string(buf.Bytes()[:4]))
}
