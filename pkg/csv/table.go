// Package csv provides the Table type returned by the parsers.
package csv

import "github.com/shapestone/shape-csvtable/internal/automaton"

// Table is a parsed CSV document: an ordered list of rows that all have the
// same number of fields. A Table is never modified after it is returned, so
// it may be shared between goroutines. Accessors return copies.
type Table struct {
	rows [][]string
}

// Record is one data row of a Table, with name-based access through the
// table's header row.
type Record struct {
	fields  []string
	headers []string
}

// NewTable builds a Table from rows, which must all have the same length.
// The rows are copied. A violation is reported like a parse error, naming the
// offending row by its 1-based index.
func NewTable(rows [][]string) (*Table, error) {
	t := &Table{rows: make([][]string, 0, len(rows))}
	for i, row := range rows {
		if i > 0 && len(row) != len(rows[0]) {
			return nil, &ParseError{
				StartLine: i + 1,
				Line:      i + 1,
				Err:       &automaton.RowLengthMismatchError{Expected: len(rows[0]), Actual: len(row)},
			}
		}
		t.rows = append(t.rows, copyRow(row))
	}
	return t, nil
}

func copyRow(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	return out
}

// Len returns the number of rows, header included.
func (t *Table) Len() int {
	return len(t.rows)
}

// Width returns the number of fields per row, or 0 for an empty table.
func (t *Table) Width() int {
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows[0])
}

// Rows returns a copy of all rows.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = copyRow(row)
	}
	return out
}

// Row returns a copy of the row at index (0-based).
// Returns (nil, false) if the index is out of bounds.
func (t *Table) Row(index int) ([]string, bool) {
	if index < 0 || index >= len(t.rows) {
		return nil, false
	}
	return copyRow(t.rows[index]), true
}

// Field returns the field at (row, col), both 0-based.
func (t *Table) Field(row, col int) (string, bool) {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.rows[row]) {
		return "", false
	}
	return t.rows[row][col], true
}

// Header returns the first row, or nil for an empty table.
func (t *Table) Header() []string {
	if len(t.rows) == 0 {
		return nil
	}
	return copyRow(t.rows[0])
}

// Records returns the rows after the header.
func (t *Table) Records() []Record {
	if len(t.rows) < 2 {
		return []Record{}
	}
	header := t.rows[0]
	records := make([]Record, 0, len(t.rows)-1)
	for _, row := range t.rows[1:] {
		records = append(records, Record{fields: row, headers: header})
	}
	return records
}

// Column returns the values under the header named name, excluding the header itself.
// Returns (nil, false) if no header has that name.
func (t *Table) Column(name string) ([]string, bool) {
	if len(t.rows) == 0 {
		return nil, false
	}
	for col, h := range t.rows[0] {
		if h != name {
			continue
		}
		values := make([]string, 0, len(t.rows)-1)
		for _, row := range t.rows[1:] {
			values = append(values, row[col])
		}
		return values, true
	}
	return nil, false
}

// Get gets the field value at the specified index.
// Returns (value, false) if the index is out of bounds.
// Index is 0-based.
func (r Record) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName gets the field value by header name.
// Returns ("", false) if no header has that name.
func (r Record) GetByName(name string) (string, bool) {
	for i, header := range r.headers {
		if header == name {
			return r.Get(i)
		}
	}
	return "", false
}

// Fields returns a copy of the field values.
func (r Record) Fields() []string {
	return copyRow(r.fields)
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}
