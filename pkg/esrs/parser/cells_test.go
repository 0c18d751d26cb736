package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/esrsreport-go/pkg/esrs/models"
	"github.com/xuri/excelize/v2"
)

func TestReadSheet(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B2", "emissions_scope1")
	f.SetCellValue(sheetName, "C2", "site")
	f.SetCellValue(sheetName, "B3", 10)
	f.SetCellValue(sheetName, "C3", "Berlin")
	f.SetCellValue(sheetName, "B5", 20.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	table, err := ReadSheet(f2, sheetName)
	require.NoError(t, err)

	assert.Equal(t, []string{"emissions_scope1", "site"}, table.Columns)
	// The blank row 4 is dropped.
	require.Equal(t, 2, table.Len())
	assert.Equal(t, int64(10), table.Rows[0][0])
	assert.Equal(t, "Berlin", table.Rows[0][1])
	assert.Equal(t, 20.5, table.Rows[1][0])
	assert.Nil(t, table.Rows[1][1])
}

func TestReadSheetTextCellsStayText(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "air_pollutants")
	f.SetCellValue(sheetName, "B1", "code")
	f.SetCellValue(sheetName, "A2", 3)
	f.SetCellValue(sheetName, "B2", "NaN")
	f.SetCellValue(sheetName, "A3", 1.25)
	f.SetCellValue(sheetName, "B3", "42")
	f.SetCellValue(sheetName, "B4", "0x1p-2")
	f.SetCellValue(sheetName, "B5", true)

	tmpFile := filepath.Join(t.TempDir(), "text.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	table, err := ReadSheet(f2, sheetName)
	require.NoError(t, err)

	require.Equal(t, 4, table.Len())
	assert.Equal(t, int64(3), table.Rows[0][0])
	assert.Equal(t, "NaN", table.Rows[0][1])
	assert.Equal(t, 1.25, table.Rows[1][0])
	assert.Equal(t, "42", table.Rows[1][1])
	assert.Equal(t, "0x1p-2", table.Rows[2][1])
	assert.IsType(t, "", table.Rows[3][1])
}

func TestReadSheetEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	table, err := ReadSheet(f, "Sheet1")
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Equal(t, 0, table.Len())
}

func TestReadSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ReadSheet(f, "NoSuchSheet")
	assert.Error(t, err)
}

func TestHeaderNames(t *testing.T) {
	tests := []struct {
		input    []string
		expected []string
	}{
		{[]string{"a", "b"}, []string{"a", "b"}},
		{[]string{"a", "", "c"}, []string{"a", "Unnamed: 1", "c"}},
		{[]string{"x", "x", "x"}, []string{"x", "x.1", "x.2"}},
		{[]string{"x", "x", "x.1"}, []string{"x", "x.1", "x.1.1"}},
		{[]string{"x.1", "x", "x"}, []string{"x.1", "x", "x.1.1"}},
		{[]string{" padded "}, []string{"padded"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, headerNames(tt.input), "headerNames(%q)", tt.input)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
		{"1e3", 1000.0},
		{"NaN", "NaN"},
		{"inf", "inf"},
		{"-Infinity", "-Infinity"},
		{"1_000", "1_000"},
		{"0x1p-2", "0x1p-2"},
		{"1e400", "1e400"},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestWriteTableRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "E1_processed.xlsx")
	in := &models.Table{
		Columns: []string{"emissions_scope1", "note"},
		Rows: [][]interface{}{
			{int64(10), "a"},
			{int64(20), nil},
		},
	}
	require.NoError(t, WriteTable(path, "E1", in))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"E1"}, f.GetSheetList())
	out, err := ReadSheet(f, "E1")
	require.NoError(t, err)
	assert.Equal(t, in.Columns, out.Columns)
	assert.Equal(t, in.Rows, out.Rows)
}
