// Package automaton implements the table-driven finite-state tokenizer that turns
// CSV text lines into a rectangular table of string fields.
//
// The machine has three parts that can be tested on their own:
//
//   - Classify buckets each rune into a SymbolClass.
//   - Next looks up (state, symbol class) in a dense transition table and
//     returns the next State and the Action to run.
//   - Buffers.Execute applies an Action to the accumulation buffers.
//
// Machine drives these over a sequence of lines and assembles the rows.
package automaton

import "fmt"

// SymbolClass is the coarse category a rune is bucketed into before dispatch.
type SymbolClass uint8

const (
	Other   SymbolClass = iota // anything not listed below
	Comma                      // ,
	Quote                      // "
	Blank                      // space or tab
	Newline                    // \n
	numSymbolClasses
)

var symbolClassNames = [numSymbolClasses]string{
	Other:   "Other",
	Comma:   "Comma",
	Quote:   "Quote",
	Blank:   "Blank",
	Newline: "Newline",
}

// String returns the name of the symbol class.
func (c SymbolClass) String() string {
	if c < numSymbolClasses {
		return symbolClassNames[c]
	}
	return fmt.Sprintf("SymbolClass(%d)", c)
}

// classTable covers the ASCII and Latin-1 range so the hot path is a single load.
var classTable [256]SymbolClass

func init() {
	// Zero value is Other.
	classTable[','] = Comma
	classTable['"'] = Quote
	classTable[' '] = Blank
	classTable['\t'] = Blank
	classTable['\n'] = Newline
}

// Classify returns the symbol class of r. It is total and has no side effects.
func Classify(r rune) SymbolClass {
	if r >= 0 && r < 256 {
		return classTable[r]
	}
	return Other
}
