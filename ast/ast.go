package ast

import (
	"bytes"
	"strconv"
	"strings"
)

// Entry is a single key line of a V1 document together with its value.
// An entry with non-nil Children is an object; otherwise Value holds the
// scalar string, which may be empty.
type Entry struct {
	Key       string
	Value     string
	Children  []*Entry
	QuotedKey bool
	Line      int // 1-based line of the key
	Indent    int // leading spaces of the key line
	Raw       string
}

// IsObject reports whether the entry holds nested entries.
func (e *Entry) IsObject() bool { return e.Children != nil }

// String returns a compact representation of the entry.
func (e *Entry) String() string {
	var out bytes.Buffer
	out.WriteString(keyString(e.Key, e.QuotedKey))
	out.WriteString(":")
	if e.IsObject() {
		out.WriteString(entriesString(e.Children))
	} else {
		out.WriteString(strconv.Quote(e.Value))
	}
	return out.String()
}

// Document is the ordered, duplicate-preserving form of a V1 document.
type Document struct {
	Entries []*Entry
}

// String returns a compact representation of the document.
func (d *Document) String() string {
	return entriesString(d.Entries)
}

// Lookup returns every top-level entry with the given key, in input order.
func (d *Document) Lookup(key string) []*Entry {
	var out []*Entry
	for _, e := range d.Entries {
		if e.Key == key {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first top-level entry with the given key, or nil.
func (d *Document) First(key string) *Entry {
	for _, e := range d.Entries {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// Last returns the last top-level entry with the given key, or nil.
func (d *Document) Last(key string) *Entry {
	for i := len(d.Entries) - 1; i >= 0; i-- {
		if d.Entries[i].Key == key {
			return d.Entries[i]
		}
	}
	return nil
}

func entriesString(entries []*Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func keyString(key string, quoted bool) string {
	if quoted {
		return strconv.Quote(key)
	}
	return key
}
