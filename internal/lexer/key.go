package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-nyml/errors"
	"github.com/KimNorgaard/go-nyml/internal/token"
)

// KeyValue is the key and raw value portion of a content line.
type KeyValue struct {
	Key    string
	Value  string // trimmed text after the colon
	Quoted bool
}

// SplitKeyValue separates a content line into key and value. Lines whose
// body starts with '"' go through ScanQuotedKey; other lines are split at the
// first unescaped ':'.
func SplitKeyValue(line token.Line) (KeyValue, error) {
	body := line.Body
	trimmed := strings.TrimLeft(body, " \t")

	if strings.HasPrefix(trimmed, `"`) {
		key, next, err := ScanQuotedKey(line, len(body)-len(trimmed))
		if err != nil {
			return KeyValue{}, err
		}
		return KeyValue{Key: key, Value: strings.TrimSpace(body[next:]), Quoted: true}, nil
	}

	idx := indexColon(body)
	if idx < 0 {
		return KeyValue{}, errors.New(errors.MissingColon, line.Num, line.Indent+1, "missing colon in key-value pair")
	}
	key := strings.ReplaceAll(strings.TrimSpace(body[:idx]), `\:`, ":")
	return KeyValue{Key: key, Value: strings.TrimSpace(body[idx+1:])}, nil
}

// ScanQuotedKey reads the quoted key that opens at body offset start. A
// backslash takes the following character verbatim. It returns the unescaped
// key and the body offset just past the colon that must follow the key.
func ScanQuotedKey(line token.Line, start int) (string, int, error) {
	s := line.Body
	var b strings.Builder

	i := start + 1
	closed := false
	for ; i < len(s); i++ {
		c := s[i]
		if c == '\\' {
			if i+1 == len(s) {
				break
			}
			i++
			b.WriteByte(s[i])
			continue
		}
		if c == '"' {
			closed = true
			break
		}
		b.WriteByte(c)
	}
	if !closed {
		return "", 0, errors.New(errors.UnmatchedQuote, line.Num, line.Indent+start+1, "unmatched quote in key")
	}

	j := i + 1
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	if j == len(s) || s[j] != ':' {
		return "", 0, errors.New(errors.MissingColon, line.Num, line.Indent+j+1, "missing colon after quoted key")
	}
	return b.String(), j + 1, nil
}

// indexColon returns the index of the first ':' in s that is not preceded
// by a backslash, or -1.
func indexColon(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && s[i+1] == ':' {
				i++
			}
		case ':':
			return i
		}
	}
	return -1
}
