package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedSymbol matches any *UnexpectedSymbolError.
	ErrUnexpectedSymbol = errors.New("unexpected symbol")

	// ErrFieldCount matches any *RowLengthMismatchError.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrUnterminatedQuote is reported when the input ends inside a quoted field.
	ErrUnterminatedQuote = errors.New("unterminated quoted field")
)

// ParseError is a positioned parse failure.
type ParseError struct {
	// StartLine is the line the failing row (or quoted field) began on (1-indexed).
	StartLine int
	// Line is the line where the error was detected (1-indexed).
	Line int
	// Column is the column of the offending symbol (1-indexed), or 0 for
	// row-level errors.
	Column int
	// Err is the underlying error.
	Err error
}

// Error renders "<message> at line L, column C", or "<message> in line L" when
// no column applies.
func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%v at line %d, column %d", e.Err, e.Line, e.Column)
	}
	return fmt.Sprintf("%v in line %d", e.Err, e.Line)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnexpectedSymbolError reports a symbol that is illegal in the current state.
type UnexpectedSymbolError struct {
	Symbol rune
}

func (e *UnexpectedSymbolError) Error() string {
	return fmt.Sprintf("unexpected symbol '%c'", e.Symbol)
}

// Is reports whether target is ErrUnexpectedSymbol.
func (e *UnexpectedSymbolError) Is(target error) bool {
	return target == ErrUnexpectedSymbol
}

// RowLengthMismatchError reports a row whose field count differs from the first row.
type RowLengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *RowLengthMismatchError) Error() string {
	if e.Actual > e.Expected {
		return fmt.Sprintf("too many fields (expected %d, got %d)", e.Expected, e.Actual)
	}
	return fmt.Sprintf("not enough fields (expected %d, got %d)", e.Expected, e.Actual)
}

// Is reports whether target is ErrFieldCount.
func (e *RowLengthMismatchError) Is(target error) bool {
	return target == ErrFieldCount
}
