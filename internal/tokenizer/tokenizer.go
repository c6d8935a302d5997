package tokenizer

import (
	"io"
	"strings"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a line tokenizer.
//
// Matchers are tried in order:
// 1. Newline
// 2. Line content (everything up to the next newline)
//
// A carriage return before the newline stays in the line token; Split strips it.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),
		LineContentMatcher(),
	)
}

// NewTokenizerWithStream creates a line tokenizer reading from a pre-configured stream.
// This is used to support reading from io.Reader.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// LineContentMatcher matches a run of characters up to, not including, the next newline.
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func LineContentMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return lineContentMatcherByte(byteStream)
		}
		return lineContentMatcherRune(stream)
	}
}

// lineContentMatcherByte scans bytes; '\n' never occurs inside a multi-byte UTF-8 sequence.
func lineContentMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || b == '\n' {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenLine, []rune(string(value)))
}

// lineContentMatcherRune is the fallback rune-based implementation.
func lineContentMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || r == '\n' {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenLine, value)
}

// Split drains tok and returns the lines it found.
//
// Lines end at "\n" or "\r\n". A terminator at the very end does not start an
// extra empty line, but empty lines in between are kept.
func Split(tok *tokenizer.Tokenizer) []string {
	lines := make([]string, 0, 16)
	current := ""
	open := false

	for {
		token, ok := tok.NextToken()
		if !ok {
			break
		}
		switch token.Kind() {
		case TokenLine:
			current = strings.TrimSuffix(token.ValueString(), "\r")
			open = true
		case TokenNewline:
			lines = append(lines, current)
			current = ""
			open = false
		}
	}

	if open {
		lines = append(lines, current)
	}
	return lines
}

// SplitLines splits an in-memory document into lines.
func SplitLines(input string) []string {
	tok := NewTokenizer()
	tok.Initialize(input)
	return Split(&tok)
}

// SplitStream splits the remainder of stream into lines.
func SplitStream(stream tokenizer.Stream) []string {
	tok := NewTokenizerWithStream(stream)
	return Split(&tok)
}

// ReadLines reads r to the end and splits it into lines. It returns the first
// read error other than io.EOF together with the lines read before it.
func ReadLines(r io.Reader) ([]string, error) {
	rec := &errRecorder{r: r}
	lines := SplitStream(tokenizer.NewStreamFromReader(rec))
	return lines, rec.err
}

// errRecorder keeps the first read error, which the stream would otherwise
// treat as end of input.
type errRecorder struct {
	r   io.Reader
	err error
}

func (e *errRecorder) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err != nil && err != io.EOF && e.err == nil {
		e.err = err
	}
	return n, err
}
