// Package block collects and dedents the body of a `key: |` multiline value.
package block

import (
	"strings"

	"github.com/KimNorgaard/go-nyml/internal/lexer"
	"github.com/KimNorgaard/go-nyml/internal/token"
)

// Collect consumes lines[start:] while each line is blank or indented deeper
// than base. It returns the dedented content and the index of the first line
// that is not part of the block; next == len(lines) means the block ran to EOF.
//
// Comment-looking lines are content here.
func Collect(lines []token.Line, start, base int) (content string, next int) {
	var raw []string
	i := start
	for ; i < len(lines); i++ {
		line := lines[i]
		if line.IsBlank() {
			raw = append(raw, "")
			continue
		}
		if line.Indent <= base {
			break
		}
		raw = append(raw, line.Raw)
	}
	return Dedent(raw), i
}

// Dedent strips the common leading-space indentation of the non-blank raw
// lines and joins them with "\n". Blank lines become empty, consecutive
// trailing blank lines collapse into one, and the result ends with a newline
// unless it is empty. A block with no lines, as in "a: |" directly followed by
// a dedent, yields "" and not "\n".
func Dedent(raw []string) string {
	minIndent := -1
	for _, r := range raw {
		if isBlank(r) {
			continue
		}
		if n := lexer.LeadingSpaces(r); minIndent < 0 || n < minIndent {
			minIndent = n
		}
	}
	if minIndent < 0 {
		minIndent = 0
	}

	pieces := make([]string, 0, len(raw))
	for _, r := range raw {
		if isBlank(r) {
			pieces = append(pieces, "")
			continue
		}
		pieces = append(pieces, r[minIndent:])
	}
	for len(pieces) >= 2 && pieces[len(pieces)-1] == "" && pieces[len(pieces)-2] == "" {
		pieces = pieces[:len(pieces)-1]
	}
	if len(pieces) == 0 {
		return ""
	}

	content := strings.Join(pieces, "\n")
	if pieces[len(pieces)-1] != "" {
		content += "\n"
	}
	return content
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
