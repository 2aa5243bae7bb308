// Package nyml implements a koanf.Parser that reads and writes NYML.
package nyml

import (
	"github.com/KimNorgaard/go-nyml"
)

// NYML implements a NYML parser for koanf.
type NYML struct {
	opts []nyml.Option
}

// Parser returns a NYML Parser. The options are passed to every Parse and
// Marshal call.
func Parser(opts ...nyml.Option) *NYML {
	return &NYML{opts: opts}
}

// Unmarshal parses the given NYML bytes into a nested map.
func (p *NYML) Unmarshal(b []byte) (map[string]interface{}, error) {
	return nyml.Parse(b, p.opts...)
}

// Marshal encodes the given map as a V1 NYML document.
func (p *NYML) Marshal(o map[string]interface{}) ([]byte, error) {
	return nyml.Marshal(o, p.opts...)
}
