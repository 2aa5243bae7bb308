package nyml

import (
	"fmt"

	"github.com/KimNorgaard/go-nyml/ast"
)

// Mapping is the collapsed form of a V1 document. Values are strings,
// nested Mappings or, under StrategyAll, []any of those.
type Mapping = map[string]any

// Strategy resolves repeated keys when collapsing a Document.
type Strategy string

const (
	StrategyFirst Strategy = "first" // the first occurrence wins
	StrategyLast  Strategy = "last"  // later occurrences overwrite earlier ones
	StrategyAll   Strategy = "all"   // every occurrence is kept, in order
)

// ParseStrategy converts a strategy name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyFirst, StrategyLast, StrategyAll:
		return st, nil
	}
	return "", fmt.Errorf("nyml: unknown duplicate strategy %q, want first, last or all", s)
}

// Collapse converts doc into a Mapping. The strategy applies independently
// at every depth; an unknown strategy behaves like StrategyLast.
//
// Under StrategyAll every key maps to a []any, including keys that occur
// only once.
func Collapse(doc *ast.Document, strategy Strategy) Mapping {
	if doc == nil {
		return Mapping{}
	}
	return collapseEntries(doc.Entries, strategy)
}

func collapseEntries(entries []*ast.Entry, strategy Strategy) Mapping {
	m := make(Mapping, len(entries))
	for _, e := range entries {
		var v any = e.Value
		if e.IsObject() {
			v = collapseEntries(e.Children, strategy)
		}

		switch strategy {
		case StrategyFirst:
			if _, ok := m[e.Key]; !ok {
				m[e.Key] = v
			}
		case StrategyAll:
			prev, _ := m[e.Key].([]any)
			m[e.Key] = append(prev, v)
		default:
			m[e.Key] = v
		}
	}
	return m
}
