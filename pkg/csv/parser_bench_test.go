package csv_test

import (
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	shapecsv "github.com/shapestone/shape-csvtable/pkg/csv"
)

// Benchmark inputs are generated once and reused across all benchmarks.
var (
	smallCSV  = generateCSV(10, false)
	mediumCSV = generateCSV(1000, false)
	largeCSV  = generateCSV(10000, false)
	quotedCSV = generateCSV(1000, true)
)

func generateCSV(rows int, quoted bool) string {
	var sb strings.Builder
	sb.WriteString("id,name,email,city,notes\n")
	for i := 0; i < rows; i++ {
		if quoted {
			fmt.Fprintf(&sb, "%d,\"Person, %d\",\"p%d@example.com\",\"City \"\"%d\"\"\",\"line one\nline two\"\n", i, i, i, i%50)
			continue
		}
		fmt.Fprintf(&sb, "%d,Person %d,p%d@example.com,City %d,  some notes  \n", i, i, i, i%50)
	}
	return sb.String()
}

func benchmarkParse(b *testing.B, input string) {
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shapecsv.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkEncodingCSV(b *testing.B, input string) {
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := csv.NewReader(strings.NewReader(input))
		r.TrimLeadingSpace = true
		if _, err := r.ReadAll(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Small(b *testing.B)  { benchmarkParse(b, smallCSV) }
func BenchmarkParse_Medium(b *testing.B) { benchmarkParse(b, mediumCSV) }
func BenchmarkParse_Large(b *testing.B)  { benchmarkParse(b, largeCSV) }
func BenchmarkParse_Quoted(b *testing.B) { benchmarkParse(b, quotedCSV) }

func BenchmarkEncodingCSV_ReadAll_Small(b *testing.B)  { benchmarkEncodingCSV(b, smallCSV) }
func BenchmarkEncodingCSV_ReadAll_Medium(b *testing.B) { benchmarkEncodingCSV(b, mediumCSV) }
func BenchmarkEncodingCSV_ReadAll_Large(b *testing.B)  { benchmarkEncodingCSV(b, largeCSV) }
func BenchmarkEncodingCSV_ReadAll_Quoted(b *testing.B) { benchmarkEncodingCSV(b, quotedCSV) }

func BenchmarkParseReader_Large(b *testing.B) {
	b.SetBytes(int64(len(largeCSV)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shapecsv.ParseReader(strings.NewReader(largeCSV)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender_Medium(b *testing.B) {
	table, err := shapecsv.Parse(quotedCSV)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = shapecsv.Render(table)
	}
}
