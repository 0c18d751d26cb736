package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatTables(t *testing.T) {
	a := &Table{
		Columns: []string{"emissions_scope1", "site"},
		Rows: [][]interface{}{
			{int64(10), "A"},
			{int64(20), "B"},
		},
	}
	b := &Table{
		Columns: []string{"site", "emissions_scope2"},
		Rows: [][]interface{}{
			{"C", int64(5)},
		},
	}
	c := &Table{Columns: []string{"emissions_scope1"}}

	out := ConcatTables(a, nil, b, c)

	assert.Equal(t, []string{"emissions_scope1", "site", "emissions_scope2"}, out.Columns)
	require.Equal(t, a.Len()+b.Len()+c.Len(), out.Len())
	assert.Equal(t, []interface{}{int64(10), "A", nil}, out.Rows[0])
	assert.Equal(t, []interface{}{nil, "C", int64(5)}, out.Rows[2])
}

func TestConcatTablesKeepsDuplicates(t *testing.T) {
	a := &Table{Columns: []string{"x"}, Rows: [][]interface{}{{int64(1)}}}

	out := ConcatTables(a, a, a)
	assert.Equal(t, 3, out.Len())
}

func TestTableColumn(t *testing.T) {
	tbl := &Table{
		Columns: []string{"a", "b"},
		Rows:    [][]interface{}{{int64(1), 2.5}, {nil, "x"}},
	}

	values, ok := tbl.Column("b")
	require.True(t, ok)
	assert.Equal(t, []interface{}{2.5, "x"}, values)

	_, ok = tbl.Column("missing")
	assert.False(t, ok)
	assert.False(t, (*Table)(nil).HasColumn("a"))
	assert.Equal(t, 0, (*Table)(nil).Len())
}

func TestMetricSet(t *testing.T) {
	set := MetricSet{{Name: "b", Value: int64(1)}, {Name: "a", Value: 2.0}}

	assert.Equal(t, []string{"b", "a"}, set.Names())
	v, ok := set.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
	assert.False(t, set.Has("c"))
}

func TestBucketsEmpty(t *testing.T) {
	assert.True(t, Buckets{"E1": {}, "S1": nil}.Empty())
	assert.False(t, Buckets{"E1": {{Source: "a", Sheet: "E1", Table: &Table{}}}}.Empty())
}
