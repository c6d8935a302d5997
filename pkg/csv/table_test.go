package csv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	rows := [][]string{{"id", "name"}, {"1", "Alice"}}
	table, err := NewTable(rows)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 2, table.Width())

	// Mutating the input must not reach the table.
	rows[1][1] = "Mallory"
	name, ok := table.Field(1, 1)
	require.True(t, ok)
	assert.Equal(t, "Alice", name)
}

func TestNewTable_Mismatch(t *testing.T) {
	_, err := NewTable([][]string{{"a", "b"}, {"c", "d"}, {"e"}})
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrFieldCount))
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, 0, pe.Column)
	assert.Equal(t, "not enough fields (expected 2, got 1) in line 3", err.Error())
}

func TestTable_Empty(t *testing.T) {
	table, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 0, table.Width())
	assert.Nil(t, table.Header())
	assert.Empty(t, table.Records())
	assert.Empty(t, table.Rows())

	_, ok := table.Column("x")
	assert.False(t, ok)
	_, ok = table.Row(0)
	assert.False(t, ok)
}

func TestTable_Accessors(t *testing.T) {
	table, err := Parse("name,age,city\nAlice,30,NYC\nBob,25,LA")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age", "city"}, table.Header())

	row, ok := table.Row(2)
	require.True(t, ok)
	assert.Equal(t, []string{"Bob", "25", "LA"}, row)

	_, ok = table.Row(3)
	assert.False(t, ok)
	_, ok = table.Row(-1)
	assert.False(t, ok)

	field, ok := table.Field(1, 2)
	require.True(t, ok)
	assert.Equal(t, "NYC", field)
	_, ok = table.Field(1, 3)
	assert.False(t, ok)

	ages, ok := table.Column("age")
	require.True(t, ok)
	assert.Equal(t, []string{"30", "25"}, ages)
	_, ok = table.Column("missing")
	assert.False(t, ok)
}

func TestTable_AccessorsReturnCopies(t *testing.T) {
	table, err := Parse("a,b\nc,d")
	require.NoError(t, err)

	rows := table.Rows()
	rows[0][0] = "x"
	header := table.Header()
	header[1] = "y"
	row, _ := table.Row(1)
	row[0] = "z"

	want := [][]string{{"a", "b"}, {"c", "d"}}
	if diff := cmp.Diff(want, table.Rows()); diff != "" {
		t.Errorf("table was mutated (-want +got):\n%s", diff)
	}
}

func TestTable_Records(t *testing.T) {
	table, err := Parse("name,age\nAlice,30\nBob,25")
	require.NoError(t, err)

	records := table.Records()
	require.Len(t, records, 2)

	rec := records[0]
	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, []string{"Alice", "30"}, rec.Fields())

	v, ok := rec.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "30", v)
	_, ok = rec.Get(2)
	assert.False(t, ok)

	v, ok = records[1].GetByName("name")
	assert.True(t, ok)
	assert.Equal(t, "Bob", v)
	_, ok = records[1].GetByName("email")
	assert.False(t, ok)

	fields := rec.Fields()
	fields[0] = "changed"
	v, _ = rec.Get(0)
	assert.Equal(t, "Alice", v)
}

func TestTable_HeaderOnly(t *testing.T) {
	table, err := Parse("a,b,c\n")
	require.NoError(t, err)

	assert.Equal(t, 1, table.Len())
	assert.Empty(t, table.Records())

	col, ok := table.Column("b")
	assert.True(t, ok)
	assert.Empty(t, col)
}
