package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadExcel loads the first sheet of an Excel workbook as a table.
// The first row is the header; shorter data rows are padded so every
// row has one cell per column.
func ReadExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	columns := uniqueColumns(rows[0])
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// GetRows drops trailing empty cells; pad back to header width.
		if len(row) < len(columns) {
			padded := make([]string, len(columns))
			copy(padded, row)
			row = padded
		}
		data = append(data, row)
	}

	return &Table{
		Name:    tableName(path),
		Columns: columns,
		Rows:    data,
	}, nil
}
