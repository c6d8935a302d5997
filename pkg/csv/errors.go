// Package csv provides error types for CSV parsing.
package csv

import "github.com/shapestone/shape-csvtable/internal/automaton"

// ParseError is a parse failure with its position. Error() renders
// "<message> at line L, column C", or "<message> in line L" for row-level
// problems such as a wrong field count.
//
// Use errors.As to get the position and errors.Is with the sentinels below
// to tell the kinds apart.
type ParseError = automaton.ParseError

// UnexpectedSymbolError reports a character that is illegal where it appears,
// such as a quote inside an unquoted field or text right after a closing quote.
type UnexpectedSymbolError = automaton.UnexpectedSymbolError

// RowLengthMismatchError reports a row whose field count differs from the first row's.
type RowLengthMismatchError = automaton.RowLengthMismatchError

// Common parsing errors
var (
	// ErrUnexpectedSymbol matches any *UnexpectedSymbolError.
	ErrUnexpectedSymbol = automaton.ErrUnexpectedSymbol

	// ErrFieldCount matches any *RowLengthMismatchError.
	ErrFieldCount = automaton.ErrFieldCount

	// ErrUnterminatedQuote indicates the input ended inside a quoted field.
	ErrUnterminatedQuote = automaton.ErrUnterminatedQuote
)
