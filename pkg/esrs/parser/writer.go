package parser

import (
	"github.com/ukaji3/esrsreport-go/pkg/esrs/models"
	"github.com/xuri/excelize/v2"
)

// WriteTable saves a table as a single-sheet workbook at path.
// The header goes in row 1 and data rows follow without an index column.
func WriteTable(path, sheetName string, t *models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
