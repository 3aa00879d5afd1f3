package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newTestWorkbook writes an xlsx file whose first sheet holds the given
// rows and returns its path.
func newTestWorkbook(t *testing.T, dir, name string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadExcel(t *testing.T) {
	path := newTestWorkbook(t, t.TempDir(), "reviews.xlsx", [][]string{
		{"id", "review_text"},
		{"1", "loved it"},
		{"2", "awful"},
	})

	table, err := ReadExcel(path)
	require.NoError(t, err)

	assert.Equal(t, "reviews", table.Name)
	assert.Equal(t, []string{"id", "review_text"}, table.Columns)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, [][]string{{"1", "loved it"}, {"2", "awful"}}, table.Rows)
}

func TestReadExcelPadsShortRows(t *testing.T) {
	path := newTestWorkbook(t, t.TempDir(), "ragged.xlsx", [][]string{
		{"a", "b", "c"},
		{"1"},
		{"2", "3", "4"},
	})

	table, err := ReadExcel(path)
	require.NoError(t, err)

	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, []string{"1", "", ""}, table.Rows[0])
}

func TestReadExcelMissingFile(t *testing.T) {
	_, err := ReadExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}
