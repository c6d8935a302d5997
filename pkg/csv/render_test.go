package csv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple CSV",
			input: "name,age\nAlice,30\nBob,25",
			want:  "name,age\nAlice,30\nBob,25\n",
		},
		{
			name:  "empty CSV",
			input: "",
			want:  "",
		},
		{
			name:  "with empty fields",
			input: "a,b,c\n1,,3\n,,\n",
			want:  "a,b,c\n1,,3\n,,\n",
		},
		{
			name:  "quotes what the parser would strip",
			input: `" a ",b` + "\n" + `"x,y","say ""hi"""`,
			want:  `" a ",b` + "\n" + `"x,y","say ""hi"""` + "\n",
		},
		{
			name:  "interior blanks stay unquoted",
			input: "a b,c",
			want:  "a b,c\n",
		},
		{
			name:  "multi-line field",
			input: "\"one\ntwo\",x",
			want:  "\"one\ntwo\",x\n",
		},
		{
			name:  "lone empty field",
			input: `""` + "\n" + "a",
			want:  `""` + "\n" + "a\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got := string(Render(table))
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderWithOptions_CRLF(t *testing.T) {
	table, err := NewTable([][]string{{"a", "b"}, {"1", "2"}})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	got := string(RenderWithOptions(table, WriterOptions{UseCRLF: true}))
	if want := "a,b\r\n1,2\r\n"; got != want {
		t.Errorf("RenderWithOptions() = %q, want %q", got, want)
	}
}

func TestRender_Nil(t *testing.T) {
	if got := Render(nil); len(got) != 0 {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

// TestRender_RoundTrip checks that rendered tables parse back unchanged.
func TestRender_RoundTrip(t *testing.T) {
	tables := [][][]string{
		{{"id", "name"}, {"1", "Alice"}, {"2", "Bob"}},
		{{"a", "b"}, {"", ""}},
		{{""}, {"x"}},
		{{" padded ", "\ttab"}, {"comma,inside", `quote"inside`}},
		{{"line\nbreak", "end"}},
		{{"größe", "名前"}},
		{{"a\rb", "z"}},
		{{"x", "end\r"}},
	}

	for _, rows := range tables {
		table, err := NewTable(rows)
		if err != nil {
			t.Fatalf("NewTable(%q) error = %v", rows, err)
		}
		back, err := Parse(string(Render(table)))
		if err != nil {
			t.Fatalf("Parse(Render(%q)) error = %v", rows, err)
		}
		if diff := cmp.Diff(rows, back.Rows()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestRender_CRLFInsideFieldComesBackAsLF(t *testing.T) {
	table, err := NewTable([][]string{{"a\r\nb", "z"}})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	out := string(Render(table))
	if want := "\"a\r\nb\",z\n"; out != want {
		t.Fatalf("Render() = %q, want %q", out, want)
	}

	back, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(Render()) error = %v", err)
	}
	if diff := cmp.Diff([][]string{{"a\nb", "z"}}, back.Rows()); diff != "" {
		t.Errorf("Parse(Render()) mismatch (-want +got):\n%s", diff)
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"plain", false},
		{"two words", false},
		{" lead", true},
		{"trail\t", true},
		{"a,b", true},
		{`a"b`, true},
		{"a\nb", true},
		{"a\rb", true},
	}
	for _, tt := range tests {
		if got := needsQuoting(tt.value); got != tt.want {
			t.Errorf("needsQuoting(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
