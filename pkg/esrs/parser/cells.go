package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/esrsreport-go/pkg/esrs/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a worksheet into a table.
// The first non-empty row inside the data bounds is the header; every later
// row with at least one value becomes a data row. An empty sheet yields an
// empty table.
func ReadSheet(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return &models.Table{}, nil
	}

	width := maxCol - minCol + 1
	table := &models.Table{
		Columns: headerNames(sliceRow(rows[minRow], minCol, width)),
	}

	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		cells := sliceRow(rows[rowIdx], minCol, width)
		values := make([]interface{}, width)
		hasData := false
		for colIdx, cellValue := range cells {
			if strings.TrimSpace(cellValue) == "" {
				continue
			}
			hasData = true
			numeric, err := isNumericCell(f, sheetName, minCol+colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			if numeric {
				values[colIdx] = parseValue(cellValue)
			} else {
				values[colIdx] = cellValue
			}
		}
		if hasData {
			table.Rows = append(table.Rows, values)
		}
	}

	return table, nil
}

// sliceRow returns width cells starting at col, padding short rows with "".
func sliceRow(row []string, col, width int) []string {
	out := make([]string, width)
	for i := 0; i < width; i++ {
		if col+i < len(row) {
			out[i] = row[col+i]
		}
	}
	return out
}

// isNumericCell reports whether the workbook stores the cell at col, row
// (1-based) as a number. Text, booleans, dates, errors and formula strings
// are kept as written.
func isNumericCell(f *excelize.File, sheetName string, col, row int) (bool, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, err
	}
	typ, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return false, err
	}
	return typ == excelize.CellTypeNumber || typ == excelize.CellTypeUnset, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original
// string. Only plain decimal notation is accepted: "NaN", "inf", "1_000"
// and hex floats stay text.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.ContainsAny(s, "_xXpP") {
		return s
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	// Return as string
	return s
}
