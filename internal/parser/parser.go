package parser

import (
	"strings"

	"github.com/KimNorgaard/go-nyml/ast"
	"github.com/KimNorgaard/go-nyml/errors"
	"github.com/KimNorgaard/go-nyml/internal/block"
	"github.com/KimNorgaard/go-nyml/internal/lexer"
	"github.com/KimNorgaard/go-nyml/internal/token"
)

// EOFPolicy decides what happens when a multiline block runs to the end of
// the input.
type EOFPolicy int

const (
	// EOFClose closes the block as if the input dedented to column zero.
	EOFClose EOFPolicy = iota
	// EOFError reports UNTERMINATED_MULTILINE.
	EOFError
)

// Config controls optional parser behavior.
type Config struct {
	Strict  bool
	EOF     EOFPolicy
	Unquote bool
}

// Parser holds the state of the parser. All lines are read up front so that
// the parser can look ahead when a key has an empty value.
type Parser struct {
	lines []token.Line
	pos   int
	cfg   Config
}

// New creates a new parser.
func New(l *lexer.Lexer, cfg Config) *Parser {
	return &Parser{
		lines: l.Lines(),
		cfg:   cfg,
	}
}

type frame struct {
	entries *[]*ast.Entry
	indent  int
	sibling int // indent of the first child, -1 until one is seen
}

// Parse parses a V1 document.
func (p *Parser) Parse() (*ast.Document, error) {
	doc := &ast.Document{Entries: []*ast.Entry{}}
	stack := []*frame{{entries: &doc.Entries, indent: 0, sibling: -1}}

	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if line.Type != token.CONTENT {
			p.pos++
			continue
		}
		if p.cfg.Strict {
			if err := lexer.CheckIndent(line); err != nil {
				return nil, err
			}
		}

		for len(stack) > 1 && line.Indent < stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		top := stack[len(stack)-1]
		if p.cfg.Strict {
			if err := top.checkSibling(line); err != nil {
				return nil, err
			}
		}

		kv, err := lexer.SplitKeyValue(line)
		if err != nil {
			return nil, err
		}
		entry := &ast.Entry{
			Key:       kv.Key,
			QuotedKey: kv.Quoted,
			Line:      line.Num,
			Indent:    line.Indent,
			Raw:       line.Raw,
		}
		*top.entries = append(*top.entries, entry)
		p.pos++

		switch kv.Value {
		case "|":
			content, err := p.collect(line, kv.Key)
			if err != nil {
				return nil, err
			}
			entry.Value = content
		case "":
			if next, ok := p.peekContent(); ok && next.Indent > line.Indent {
				entry.Children = []*ast.Entry{}
				stack = append(stack, &frame{entries: &entry.Children, indent: line.Indent + 1, sibling: -1})
			}
		default:
			entry.Value = kv.Value
			if p.cfg.Unquote {
				entry.Value = unquote(kv.Value)
			}
		}
	}

	return doc, nil
}

func (f *frame) checkSibling(line token.Line) error {
	if f.sibling < 0 {
		f.sibling = line.Indent
		return nil
	}
	if line.Indent != f.sibling {
		return errors.New(errors.BadIndent, line.Num, line.Indent+1,
			"inconsistent indentation: expected %d spaces, got %d", f.sibling, line.Indent)
	}
	return nil
}

// collect reads the multiline block that follows the `|` key line and
// advances past it.
func (p *Parser) collect(line token.Line, key string) (string, error) {
	content, next := block.Collect(p.lines, p.pos, line.Indent)
	if next == len(p.lines) && p.cfg.EOF == EOFError {
		return "", errors.New(errors.UnterminatedMultiline, line.Num, 0,
			"multiline value for key %q is not terminated before end of input", key)
	}
	p.pos = next
	return content, nil
}

// peekContent returns the next content line without consuming anything.
func (p *Parser) peekContent() (token.Line, bool) {
	for i := p.pos; i < len(p.lines); i++ {
		if p.lines[i].Type == token.CONTENT {
			return p.lines[i], true
		}
	}
	return token.Line{}, false
}

// unquote strips a single pair of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' && strings.Count(s, `"`) == 2 {
		return s[1 : len(s)-1]
	}
	return s
}
