/*
Package nyml parses and encodes NYML ("Not YAML"), a minimal, string-only,
indentation-based format meant to be embedded in larger documents, for
example as a fenced block inside markdown. The API mirrors the standard
`encoding/json` package.

NYML has two incompatible grammar generations.

1. V1: Keys and Nested Objects

A V1 document is a tree of `key: value` lines. A key with an empty value and
more-indented lines below it is an object; `key: |` starts a multiline
string whose common indentation is removed. Lines starting with `#` outside
multiline blocks are comments.

	name: demo
	server:
	  host: localhost
	  port: 8080
	notes: |
	  # not a comment
	  free text

Parse returns the document as a Mapping in which later duplicates win, and
ParseDocument returns the ordered, duplicate-preserving entries form. Collapse
turns entries into a Mapping under a different Strategy:

	doc, err := nyml.ParseDocument(data)
	if err != nil {
		// handle error
	}
	all := nyml.Collapse(doc, nyml.StrategyAll)

Unmarshal fills a struct from the collapsed mapping:

	type Config struct {
		Name   string `nyml:"name"`
		Server struct {
			Host string `nyml:"host"`
			Port int    `nyml:"port"`
		} `nyml:"server"`
	}

	var cfg Config
	if err := nyml.Unmarshal(data, &cfg); err != nil {
		// handle error
	}

2. V2: Lists All the Way Down

In V2 every level, including the root, is an ordered list that may mix plain
strings with keyed items. A key with an empty value always opens a nested
list, even for a single item, and repeated keys are never merged. `#` is
ordinary content.

	items:
	  value1
	  child: a

ParseV2 returns this as an ast.List of *ast.PlainString and *ast.KeyedItem
nodes.

Malformed input yields a *ParseError carrying a code such as MISSING_COLON,
the 1-based line and, where known, the column. Parsing options such as
Strict and OnEOFInMultiline tighten the grammar.

Marshal and MarshalV2 produce NYML text that parses back to an equal value.
Format rewrites source with uniform indentation.

Package parsers/nyml adapts Parse and Marshal to koanf, and cmd/nyml is a
command line tool with parse, encode, check and fmt subcommands.
*/
package nyml
