package automaton

import (
	"fmt"
	"testing"
)

func benchLines(rows int) []string {
	lines := make([]string, 0, rows+1)
	lines = append(lines, "id,name,email,note")
	for i := 0; i < rows; i++ {
		lines = append(lines, fmt.Sprintf(`%d, user %d ,user%d@example.com,"says ""hi"", twice"`, i, i, i))
	}
	return lines
}

func BenchmarkParse_Small(b *testing.B) {
	lines := benchLines(10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(lines); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Large(b *testing.B) {
	lines := benchLines(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(lines); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	input := []rune(`a, b c ,"d""e",f`)
	for i := 0; i < b.N; i++ {
		for _, r := range input {
			_ = Classify(r)
		}
	}
}
