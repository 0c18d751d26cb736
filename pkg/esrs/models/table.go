// Package models defines data structures for sustainability report generation.
package models

// Table is a header-addressed grid of parsed cell values.
type Table struct {
	// Columns holds the header names in sheet order.
	Columns []string `json:"columns"`
	// Rows holds one value per column. A nil value is an empty cell.
	// Non-nil values are int64, float64 or string.
	Rows [][]interface{} `json:"rows"`
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column is present.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns the values of the named column in row order.
// The second result is false when the column is absent.
func (t *Table) Column(name string) ([]interface{}, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, true
}

// ConcatTables stacks tables row-wise in argument order.
// The result carries the union of columns in first-seen order; rows from a
// table lacking a column hold an empty cell there. Rows are never merged or
// deduplicated, so the result length is the sum of the input lengths.
func ConcatTables(tables ...*Table) *Table {
	out := &Table{}
	pos := make(map[string]int)
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, c := range t.Columns {
			if _, ok := pos[c]; !ok {
				pos[c] = len(out.Columns)
				out.Columns = append(out.Columns, c)
			}
		}
	}

	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, row := range t.Rows {
			merged := make([]interface{}, len(out.Columns))
			for i, c := range t.Columns {
				if i < len(row) {
					merged[pos[c]] = row[i]
				}
			}
			out.Rows = append(out.Rows, merged)
		}
	}
	return out
}
