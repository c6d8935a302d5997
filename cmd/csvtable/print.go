package main

import (
	"io"
	"strings"

	"golang.org/x/text/width"

	"github.com/shapestone/shape-csvtable/pkg/csv"
)

var cellEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// printTable writes the table with columns aligned by display width. The
// header row is underlined. Line breaks and tabs inside fields are escaped.
func printTable(w io.Writer, table *csv.Table) {
	rows := table.Rows()
	if len(rows) == 0 {
		return
	}

	widths := make([]int, table.Width())
	for i, row := range rows {
		for j, f := range row {
			f = cellEscaper.Replace(f)
			row[j] = f
			if n := displayWidth(f); n > widths[j] {
				widths[j] = n
			}
		}
		rows[i] = row
	}

	var sb strings.Builder
	for i, row := range rows {
		writeRow(&sb, row, widths)
		if i == 0 {
			rule := make([]string, len(widths))
			for j, n := range widths {
				rule[j] = strings.Repeat("-", n)
			}
			writeRow(&sb, rule, widths)
		}
	}
	io.WriteString(w, sb.String())
}

// writeRow pads every column but the last. Padding after the last non-empty
// field is dropped; the fields' own blanks are kept.
func writeRow(sb *strings.Builder, row []string, widths []int) {
	var line strings.Builder
	end := 0
	for j, f := range row {
		if j > 0 {
			line.WriteString("  ")
		}
		line.WriteString(f)
		if f != "" {
			end = line.Len()
		}
		if j < len(row)-1 {
			line.WriteString(strings.Repeat(" ", widths[j]-displayWidth(f)))
		}
	}
	sb.WriteString(line.String()[:end])
	sb.WriteByte('\n')
}

// displayWidth counts terminal columns: wide and fullwidth East Asian runes
// take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
