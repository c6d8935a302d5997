// Package csv provides Table rendering to CSV bytes.
package csv

import (
	"bytes"
	"strings"
)

// Render converts a table to CSV bytes that Parse reads back as the same table,
// with one exception: a CR-LF pair inside a field comes back as a single LF,
// because Parse treats "\r\n" as a line terminator. A lone CR survives.
//
// Rendering handles:
//   - Quoting of fields containing commas, quotes, line breaks, or leading or
//     trailing blanks (which the parser would otherwise strip)
//   - Proper escaping of quotes (doubled)
//   - Quoting a lone empty field, which would otherwise be a blank line
//   - A terminator after every row (LF)
//
// Example:
//
//	table, _ := csv.Parse("name,age\nAlice,30\n")
//	out := csv.Render(table)
//	// out: name,age\nAlice,30\n
func Render(t *Table) []byte {
	return RenderWithOptions(t, DefaultWriterOptions())
}

// RenderWithOptions converts a table to CSV bytes with custom options.
func RenderWithOptions(t *Table, opts WriterOptions) []byte {
	if t == nil {
		return []byte{}
	}

	lineEnding := "\n"
	if opts.UseCRLF {
		lineEnding = "\r\n"
	}

	var buf bytes.Buffer
	for _, row := range t.rows {
		if len(row) == 1 && row[0] == "" {
			buf.WriteString(`""`)
		} else {
			for i, field := range row {
				if i > 0 {
					buf.WriteByte(',')
				}
				writeField(&buf, field)
			}
		}
		buf.WriteString(lineEnding)
	}
	return buf.Bytes()
}

// writeField writes a CSV field to the buffer with proper escaping.
func writeField(buf *bytes.Buffer, value string) {
	if !needsQuoting(value) {
		buf.WriteString(value)
		return
	}

	buf.WriteByte('"')
	// Escape quotes by doubling them
	for _, ch := range value {
		if ch == '"' {
			buf.WriteString(`""`)
		} else {
			buf.WriteRune(ch)
		}
	}
	buf.WriteByte('"')
}

func needsQuoting(value string) bool {
	if value == "" {
		return false
	}
	if strings.ContainsAny(value, ",\"\n\r") {
		return true
	}
	return isBlank(value[0]) || isBlank(value[len(value)-1])
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}
