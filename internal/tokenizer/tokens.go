// Package tokenizer splits raw CSV text into lines using Shape's tokenizer framework.
package tokenizer

// Token type constants for line splitting.
//
// The tokenizer only finds line boundaries. Commas, quotes and blanks are
// left to the automaton, which also decides whether a line break belongs to
// a quoted field.
const (
	TokenLine    = "Line"    // Line content (any run of characters except \n)
	TokenNewline = "Newline" // \n line terminator
)
