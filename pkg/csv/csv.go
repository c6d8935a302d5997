// Package csv parses CSV text into a rectangular table of string fields.
//
// Parsing is done by a table-driven finite-state automaton. It handles:
//   - quoted fields, with commas and line breaks inside the quotes
//   - doubled quotes ("") as an escaped quote inside a quoted field
//   - leading blanks (space, tab) before a field, which are discarded
//   - trailing blanks after an unquoted field, which are stripped, while
//     blanks between words of the field are kept
//
// Every row must have as many fields as the first one. The first malformed
// symbol or row aborts the parse with a *ParseError naming the line (and
// column, when one applies); no partial table is returned.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call builds its own automaton. A returned *Table is immutable.
//
//	// Safe: Concurrent parsing
//	go func() { csv.Parse(input1) }()
//	go func() { csv.Parse(input2) }()
//
// # Parsing APIs
//
//   - Parse(string) parses an in-memory document
//   - ParseLines([]string) parses lines that were already read, without terminators
//   - ParseReader(io.Reader) reads the whole input and parses it
//
// # Example usage with Parse:
//
//	table, err := csv.Parse("name,age\nAlice,30\nBob,25")
//	if err != nil {
//	    // handle error
//	}
//	for _, rec := range table.Records() {
//	    name, _ := rec.GetByName("name")
//	    fmt.Println(name)
//	}
package csv

import (
	"io"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/shapestone/shape-csvtable/internal/automaton"
	"github.com/shapestone/shape-csvtable/internal/tokenizer"
)

// Parse parses a CSV document held in memory.
// Lines may end in "\n" or "\r\n"; a final terminator is optional.
//
// Example:
//
//	table, err := csv.Parse("name,age\nAlice,30")
//	// table.Header() == []string{"name", "age"}
func Parse(input string) (*Table, error) {
	return ParseWithOptions(input, DefaultReaderOptions())
}

// ParseLines parses a document given as lines without terminators.
// Zero lines give an empty table. A "\n" inside a line counts as a line
// break, for both row structure and error positions.
func ParseLines(lines []string) (*Table, error) {
	return ParseLinesWithOptions(lines, DefaultReaderOptions())
}

// ParseReader reads all of reader and parses it.
//
// Example parsing from a file:
//
//	file, err := os.Open("data.csv")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	table, err := csv.ParseReader(file)
func ParseReader(reader io.Reader) (*Table, error) {
	return ParseReaderWithOptions(reader, DefaultReaderOptions())
}

// ParseWithOptions parses a CSV document held in memory with custom options.
func ParseWithOptions(input string, opts ReaderOptions) (*Table, error) {
	return ParseLinesWithOptions(tokenizer.SplitLines(input), opts)
}

// ParseReaderWithOptions reads all of reader and parses it with custom options.
func ParseReaderWithOptions(reader io.Reader, opts ReaderOptions) (*Table, error) {
	lines, err := tokenizer.ReadLines(reader)
	if err != nil {
		return nil, errors.Wrap(err, "read csv input")
	}
	return ParseLinesWithOptions(lines, opts)
}

// ParseLinesWithOptions parses lines without terminators with custom options.
func ParseLinesWithOptions(lines []string, opts ReaderOptions) (*Table, error) {
	logger := opts.logger()

	rows, err := automaton.Parse(lines)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			level.Debug(logger).Log("msg", "csv parse failed", "line", pe.Line, "column", pe.Column, "err", pe.Err)
		}
		return nil, err
	}

	t := &Table{rows: rows}
	level.Debug(logger).Log("msg", "csv parsed", "lines", len(lines), "rows", t.Len(), "columns", t.Width())
	return t, nil
}

// Format returns the format identifier for this parser.
// Returns "CSV" to identify this as the CSV data format parser.
func Format() string {
	return "CSV"
}

// Validate checks whether input is well-formed CSV.
//
// Returns nil if it is, otherwise the *ParseError describing the first problem:
//
//	if err := csv.Validate(input); err != nil {
//	    fmt.Println("Invalid CSV:", err)
//	}
func Validate(input string) error {
	_, err := Parse(input)
	return err
}

// ValidateReader checks whether the input from reader is well-formed CSV.
// This reads the entire input.
func ValidateReader(reader io.Reader) error {
	_, err := ParseReader(reader)
	return err
}
