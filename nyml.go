package nyml

import (
	"bytes"

	"github.com/KimNorgaard/go-nyml/ast"
	"github.com/KimNorgaard/go-nyml/internal/lexer"
	"github.com/KimNorgaard/go-nyml/internal/parser"
)

// Parse parses a V1 document and collapses it into a Mapping. Repeated keys
// resolve with StrategyLast unless DuplicateStrategy says otherwise.
//
// Values are kept as written: `k: "v"` yields "v" with its quotes. Pass
// UnquoteValues to strip one surrounding pair.
func Parse(data []byte, opts ...Option) (Mapping, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	doc, err := parseDocument(data, o)
	if err != nil {
		return nil, err
	}
	return Collapse(doc, o.strategy), nil
}

// ParseDocument parses a V1 document into its order- and duplicate-preserving
// entries form.
func ParseDocument(data []byte, opts ...Option) (*ast.Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return parseDocument(data, o)
}

// ParseV2 parses a V2 document. Of the parse options only OnEOFInMultiline
// applies.
func ParseV2(data []byte, opts ...Option) (ast.List, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return parseList(data, o)
}

func parseDocument(data []byte, o *options) (*ast.Document, error) {
	return parser.New(lexer.New(data), o.parserConfig()).Parse()
}

func parseList(data []byte, o *options) (ast.List, error) {
	cfg := parser.Config{EOF: o.eof}
	return parser.New(lexer.New(data), cfg).ParseV2()
}

// Marshal returns the V1 NYML encoding of v.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalV2 returns the V2 NYML encoding of v.
func MarshalV2(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).EncodeV2(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the V1 NYML data and stores the result in the value
// pointed to by v.
//
// A *ast.Document receives the entries form, a *ast.List the V2 parse and a
// *Mapping the collapsed mapping. Any other target is filled from the
// collapsed mapping, matching keys against `nyml` struct tags or, failing
// that, field names case-insensitively. Scalars are converted weakly, so
// "8080" fills an int, and a multiline value fills a slice line by line.
func Unmarshal(data []byte, v any, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	return unmarshal(data, v, o)
}
