package nyml

import (
	"io"

	"github.com/KimNorgaard/go-nyml/internal/formatter"
	"github.com/KimNorgaard/go-nyml/internal/marshaler"
)

// Encoder writes NYML values to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the V1 encoding of v to the stream.
//
// v may be a map with string keys, a struct (fields named by `nyml` tags,
// with omitempty support) or an *ast.Document. Map keys are written in
// sorted order. Strings containing a newline become `|` blocks, sequences of
// scalars become one block line per element, and sequences of objects
// repeat the key once per element.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	doc, err := marshaler.Document(v)
	if err != nil {
		return err
	}
	return formatter.New(e.w, o.indent).FormatDocument(doc)
}

// EncodeV2 writes the V2 encoding of v to the stream.
//
// Maps and structs become one keyed item per key, sequences become nested
// lists and scalar elements become plain strings. Empty sequences cannot be
// expressed in V2 and are rejected.
func (e *Encoder) EncodeV2(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	list, err := marshaler.List(v)
	if err != nil {
		return err
	}
	return formatter.New(e.w, o.indent).FormatList(list)
}
