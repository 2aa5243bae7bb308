package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-nyml/ast"
)

const (
	defaultIndent = 2
)

// Formatter writes an NYML AST to an output stream.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
}

// New returns a new formatter that writes to w. A nil or non-positive
// indentSpaces selects the default indentation.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil && *indentSpaces > 0 {
		spaces = *indentSpaces
	}
	return &Formatter{w: w, indent: strings.Repeat(" ", spaces)}
}

// FormatDocument writes a V1 document.
func (f *Formatter) FormatDocument(doc *ast.Document) error {
	return f.writeEntries(doc.Entries)
}

// FormatList writes a V2 list.
func (f *Formatter) FormatList(list ast.List) error {
	return f.writeList(list)
}

func (f *Formatter) writeLine(s string) error {
	var b strings.Builder
	for i := 0; i < f.depth; i++ {
		b.WriteString(f.indent)
	}
	b.WriteString(s)
	b.WriteByte('\n')
	_, err := io.WriteString(f.w, b.String())
	return err
}

func (f *Formatter) writeEntries(entries []*ast.Entry) error {
	for _, e := range entries {
		key, err := FormatKey(e.Key, e.QuotedKey)
		if err != nil {
			return err
		}

		if e.IsObject() {
			if err := f.writeLine(key + ":"); err != nil {
				return err
			}
			f.depth++
			if err := f.writeEntries(e.Children); err != nil {
				return err
			}
			f.depth--
			continue
		}
		if err := f.writeScalar(key, e.Value, key+":"); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) writeList(list ast.List) error {
	for _, n := range list {
		switch n := n.(type) {
		case *ast.PlainString:
			if err := f.writeLine(n.Text); err != nil {
				return err
			}
		case *ast.KeyedItem:
			key, err := FormatKey(n.Key, n.QuotedKey)
			if err != nil {
				return err
			}
			if !n.IsList() {
				// An empty V2 value is only expressible as an empty block.
				if err := f.writeScalar(key, n.Value, key+": |"); err != nil {
					return err
				}
				continue
			}
			if len(n.List) == 0 {
				return fmt.Errorf("nyml: cannot format empty list for key %q", n.Key)
			}
			if err := f.writeLine(key + ":"); err != nil {
				return err
			}
			f.depth++
			if err := f.writeList(n.List); err != nil {
				return err
			}
			f.depth--
		default:
			return fmt.Errorf("nyml: unsupported node type for formatting: %T", n)
		}
	}
	return nil
}

// writeScalar writes key and value on one line, as a `|` block when the
// value spans lines, or as empty when value is "".
func (f *Formatter) writeScalar(key, value, empty string) error {
	switch {
	case value == "":
		return f.writeLine(empty)
	case !strings.Contains(value, "\n"):
		return f.writeLine(key + ": " + value)
	}

	if err := f.writeLine(key + ": |"); err != nil {
		return err
	}
	f.depth++
	defer func() { f.depth-- }()
	for _, line := range strings.Split(strings.TrimSuffix(value, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			if _, err := io.WriteString(f.w, "\n"); err != nil {
				return err
			}
			continue
		}
		if err := f.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

// FormatKey renders a key, quoting it when it could not be read back
// verbatim as a bare key.
func FormatKey(key string, quoted bool) (string, error) {
	if strings.Contains(key, "\n") {
		return "", fmt.Errorf("nyml: key %q contains a line break", key)
	}
	if !quoted && !needsQuotes(key) {
		return key, nil
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(key); i++ {
		if key[i] == '"' || key[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	b.WriteByte('"')
	return b.String(), nil
}

func needsQuotes(key string) bool {
	return key == "" ||
		strings.TrimSpace(key) != key ||
		strings.ContainsAny(key, `:\`) ||
		strings.HasPrefix(key, `"`) ||
		strings.HasPrefix(key, "#")
}
