package automaton

import (
	"fmt"
	"strings"
)

// Buffers is the mutable accumulation state of one parse. It is owned by a
// single Machine and must not be shared.
type Buffers struct {
	field  strings.Builder // field in progress
	blanks strings.Builder // blank run held back after unquoted content
	row    []string        // fields of the row in progress
	rows   [][]string      // committed rows

	// Line and Column locate the symbol being executed (1-indexed).
	Line   int
	Column int

	rowStart int  // line the row in progress began on
	touched  bool // a non-newline symbol was consumed since the last committed row
}

// NewBuffers returns empty buffers positioned before the first line.
func NewBuffers() *Buffers {
	return &Buffers{
		rows:     make([][]string, 0, 16),
		Line:     1,
		rowStart: 1,
	}
}

// Rows returns the committed rows.
func (b *Buffers) Rows() [][]string {
	return b.rows
}

// Field returns the text of the field in progress.
func (b *Buffers) Field() string {
	return b.field.String()
}

// PendingBlanks returns the held-back blank run.
func (b *Buffers) PendingBlanks() string {
	return b.blanks.String()
}

// Row returns the fields committed so far for the row in progress.
func (b *Buffers) Row() []string {
	return b.row
}

// touch marks the row in progress as started on the current line.
func (b *Buffers) touch() {
	if !b.touched {
		b.touched = true
		b.rowStart = b.Line
	}
}

// Execute applies action a for the symbol r.
func (b *Buffers) Execute(a Action, r rune) error {
	switch a {
	case AppendChar:
		b.field.WriteRune(r)
		b.blanks.Reset()

	case FlushTrailingThenAppendChar:
		b.field.WriteString(b.blanks.String())
		b.blanks.Reset()
		b.field.WriteRune(r)

	case BufferTrailingBlank:
		b.blanks.WriteRune(r)

	case CommitField:
		b.commitField()

	case CommitRow:
		return b.commitRow()

	case RaiseUnexpectedSymbol:
		return &ParseError{
			StartLine: b.rowStart,
			Line:      b.Line,
			Column:    b.Column,
			Err:       &UnexpectedSymbolError{Symbol: r},
		}

	case NoOp:

	default:
		panic(fmt.Sprintf("automaton: unknown action %v", a))
	}
	return nil
}

// commitField moves the field in progress into the row. Held blanks were
// genuinely trailing and are dropped.
func (b *Buffers) commitField() {
	b.row = append(b.row, b.field.String())
	b.field.Reset()
	b.blanks.Reset()
}

// commitRow closes the field in progress and appends the row, enforcing that
// every row has as many fields as the first one. An untouched row (a blank
// line outside quotes, or nothing pending at end of input) is dropped.
func (b *Buffers) commitRow() error {
	if !b.touched {
		b.field.Reset()
		b.blanks.Reset()
		b.row = b.row[:0]
		return nil
	}
	b.commitField()

	if len(b.rows) > 0 {
		if want := len(b.rows[0]); len(b.row) != want {
			return &ParseError{
				StartLine: b.rowStart,
				Line:      b.Line,
				Err:       &RowLengthMismatchError{Expected: want, Actual: len(b.row)},
			}
		}
	}

	b.rows = append(b.rows, b.row)
	b.row = make([]string, 0, len(b.row))
	b.touched = false
	return nil
}
