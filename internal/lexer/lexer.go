package lexer

import (
	"bytes"
	"strings"

	"github.com/KimNorgaard/go-nyml/errors"
	"github.com/KimNorgaard/go-nyml/internal/token"
)

// Lexer splits NYML source into classified lines.
type Lexer struct {
	input    []byte
	position int // start of the next line
	line     int
}

// New creates and returns a new Lexer.
func New(input []byte) *Lexer {
	return &Lexer{input: input}
}

// NextLine returns the next line of input, or a token.EOF line once the
// input is exhausted. A trailing newline does not produce an extra line.
func (l *Lexer) NextLine() token.Line {
	if l.position >= len(l.input) {
		return token.Line{Type: token.EOF, Num: l.line + 1}
	}

	rest := l.input[l.position:]
	var raw []byte
	if end := bytes.IndexByte(rest, '\n'); end >= 0 {
		raw = rest[:end]
		l.position += end + 1
	} else {
		raw = rest
		l.position = len(l.input)
	}
	raw = bytes.TrimSuffix(raw, []byte("\r"))

	l.line++
	return Classify(string(raw), l.line)
}

// Lines drains the lexer and returns every line before EOF.
func (l *Lexer) Lines() []token.Line {
	var lines []token.Line
	for {
		line := l.NextLine()
		if line.IsEOF() {
			return lines
		}
		lines = append(lines, line)
	}
}

// Classify computes the indentation and structural role of a raw line.
// Only ASCII spaces count as indentation.
func Classify(raw string, num int) token.Line {
	indent := LeadingSpaces(raw)
	line := token.Line{
		Num:    num,
		Indent: indent,
		Body:   raw[indent:],
		Raw:    raw,
	}

	switch {
	case strings.TrimSpace(raw) == "":
		line.Type = token.BLANK
	case strings.HasPrefix(line.Body, "#"):
		line.Type = token.COMMENT
	default:
		line.Type = token.CONTENT
	}
	return line
}

// LeadingSpaces counts the leading ASCII space characters of s.
func LeadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

// CheckIndent rejects tab characters inside the leading whitespace of a line.
func CheckIndent(line token.Line) error {
	lead := line.Raw[:len(line.Raw)-len(strings.TrimLeft(line.Raw, " \t"))]
	if i := strings.IndexByte(lead, '\t'); i >= 0 {
		return errors.New(errors.BadIndent, line.Num, i+1, "tab character in indentation")
	}
	return nil
}
