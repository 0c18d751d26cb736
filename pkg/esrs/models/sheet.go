package models

// Sheet represents one named worksheet and its table.
type Sheet struct {
	// Name is the worksheet name as stored in the workbook.
	Name string `json:"name"`
	// Table contains the header and data rows.
	Table *Table `json:"table"`
}

// RawSheet is a sheet tagged with the file it came from.
type RawSheet struct {
	Source string `json:"source"`
	Sheet  string `json:"sheet"`
	Table  *Table `json:"table"`
}

// Buckets maps a category code to the sheets classified into it, in
// classification order. Every configured code has an entry, possibly empty.
type Buckets map[string][]RawSheet

// Empty reports whether no bucket holds a sheet.
func (b Buckets) Empty() bool {
	for _, sheets := range b {
		if len(sheets) > 0 {
			return false
		}
	}
	return true
}

// Tables returns the tables of the given bucket in order.
func (b Buckets) Tables(code string) []*Table {
	sheets := b[code]
	tables := make([]*Table, 0, len(sheets))
	for _, s := range sheets {
		tables = append(tables, s.Table)
	}
	return tables
}
