package parser

import (
	"strings"

	"github.com/KimNorgaard/go-nyml/ast"
	"github.com/KimNorgaard/go-nyml/errors"
	"github.com/KimNorgaard/go-nyml/internal/lexer"
	"github.com/KimNorgaard/go-nyml/internal/token"
)

type listFrame struct {
	list   *ast.List
	indent int
}

// ParseV2 parses a V2 document. V2 has no comments: every non-blank line is
// content.
func (p *Parser) ParseV2() (ast.List, error) {
	root := ast.List{}
	stack := []listFrame{{list: &root, indent: -1}}

	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if line.IsBlank() {
			p.pos++
			continue
		}

		for len(stack) > 1 && line.Indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		top := stack[len(stack)-1]
		p.pos++

		kv, err := lexer.SplitKeyValue(line)
		if err != nil {
			// Without a usable key the line is a plain string, which only
			// exists inside a multi-value field.
			if len(stack) > 1 {
				*top.list = append(*top.list, &ast.PlainString{
					Text: strings.TrimSpace(line.Raw),
					Line: line.Num,
				})
			}
			continue
		}

		item := &ast.KeyedItem{Key: kv.Key, QuotedKey: kv.Quoted, Line: line.Num}
		*top.list = append(*top.list, item)

		switch kv.Value {
		case "|":
			content, err := p.collect(line, kv.Key)
			if err != nil {
				return nil, err
			}
			item.Value = content
		case "":
			next, ok := p.peekNonBlank()
			if !ok || next.Indent <= line.Indent {
				return nil, errors.New(errors.MissingValue, line.Num, line.Indent+1,
					"key %q has no value and no indented items", kv.Key)
			}
			item.List = ast.List{}
			stack = append(stack, listFrame{list: &item.List, indent: line.Indent})
		default:
			item.Value = kv.Value
		}
	}

	return root, nil
}

func (p *Parser) peekNonBlank() (token.Line, bool) {
	for i := p.pos; i < len(p.lines); i++ {
		if !p.lines[i].IsBlank() {
			return p.lines[i], true
		}
	}
	return token.Line{}, false
}
