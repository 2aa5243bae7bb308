package ast

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const documentType = "document"

type entryJSON struct {
	Key       string    `json:"key"`
	Value     *string   `json:"value,omitempty"`
	Children  *[]*Entry `json:"children,omitempty"`
	Line      int       `json:"line"`
	Indent    int       `json:"indent"`
	QuotedKey bool      `json:"quoted_key"`
}

type documentJSON struct {
	Type    string   `json:"type"`
	Entries []*Entry `json:"entries"`
}

// MarshalJSON encodes the entry with either a "value" or a "children" field.
// An object without children is written with "children": [].
func (e *Entry) MarshalJSON() ([]byte, error) {
	out := entryJSON{
		Key:       e.Key,
		Line:      e.Line,
		Indent:    e.Indent,
		QuotedKey: e.QuotedKey,
	}
	if e.IsObject() {
		out.Children = &e.Children
	} else {
		v := e.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an entry. A present "children" field makes the entry
// an object even when it is empty.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var in entryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*e = Entry{
		Key:       in.Key,
		Line:      in.Line,
		Indent:    in.Indent,
		QuotedKey: in.QuotedKey,
	}
	switch {
	case in.Children != nil:
		e.Children = *in.Children
		if e.Children == nil {
			e.Children = []*Entry{}
		}
	case in.Value != nil:
		e.Value = *in.Value
	}
	return nil
}

// MarshalJSON encodes the document as {"type":"document","entries":[...]}.
func (d *Document) MarshalJSON() ([]byte, error) {
	entries := d.Entries
	if entries == nil {
		entries = []*Entry{}
	}
	return json.Marshal(documentJSON{Type: documentType, Entries: entries})
}

// UnmarshalJSON accepts the document object form as well as a bare array of
// entries.
func (d *Document) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var entries []*Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return err
		}
		d.Entries = entries
		return nil
	}

	var in documentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Type != documentType {
		return fmt.Errorf("ast: unexpected document type %q", in.Type)
	}
	d.Entries = in.Entries
	return nil
}

// MarshalJSON encodes plain strings as JSON strings and keyed items as
// single-key objects.
func (l List) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(l))
	for _, n := range l {
		switch n := n.(type) {
		case *PlainString:
			out = append(out, n.Text)
		case *KeyedItem:
			if n.IsList() {
				out = append(out, map[string]any{n.Key: n.List})
			} else {
				out = append(out, map[string]any{n.Key: n.Value})
			}
		}
	}
	return json.Marshal(out)
}
