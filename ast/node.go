package ast

import (
	"bytes"
	"strconv"
	"strings"
)

// NodeKind tells the variants of a V2 Node apart.
type NodeKind int

const (
	PlainKind NodeKind = iota // *PlainString
	KeyedKind                 // *KeyedItem
)

func (k NodeKind) String() string {
	switch k {
	case PlainKind:
		return "plain"
	case KeyedKind:
		return "keyed"
	}
	return "NodeKind(" + strconv.Itoa(int(k)) + ")"
}

// Node is an item of a V2 list. The interface is sealed: the only
// implementations are *PlainString and *KeyedItem.
type Node interface {
	Kind() NodeKind
	String() string
	node()
}

// List is the V2 document root and the value of every multi-value field.
type List []Node

// String returns a compact representation of the list.
func (l List) String() string {
	parts := make([]string, 0, len(l))
	for _, n := range l {
		parts = append(parts, n.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// PlainString is an unkeyed line inside a multi-value field.
type PlainString struct {
	Text string
	Line int
}

func (p *PlainString) node()          {}
func (p *PlainString) Kind() NodeKind { return PlainKind }
func (p *PlainString) String() string { return strconv.Quote(p.Text) }

// KeyedItem is a key with either a scalar Value or, for multi-value fields,
// a non-nil List.
type KeyedItem struct {
	Key       string
	QuotedKey bool
	Value     string
	List      List
	Line      int
}

func (k *KeyedItem) node()          {}
func (k *KeyedItem) Kind() NodeKind { return KeyedKind }

// IsList reports whether the item is a multi-value field.
func (k *KeyedItem) IsList() bool { return k.List != nil }

func (k *KeyedItem) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	out.WriteString(keyString(k.Key, k.QuotedKey))
	out.WriteString(":")
	if k.IsList() {
		out.WriteString(k.List.String())
	} else {
		out.WriteString(strconv.Quote(k.Value))
	}
	out.WriteString("}")
	return out.String()
}
