package marshaler

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/KimNorgaard/go-nyml/ast"
	"github.com/KimNorgaard/go-nyml/internal/mapper"
)

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// Document converts a Go value into a V1 document. The value must be a map
// with string keys, a struct, or an *ast.Document.
func Document(v any) (*ast.Document, error) {
	switch d := v.(type) {
	case *ast.Document:
		if d == nil {
			return &ast.Document{}, nil
		}
		return d, nil
	case ast.Document:
		return &d, nil
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return &ast.Document{}, nil
	}
	if rv.Kind() != reflect.Map && rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("nyml: cannot marshal %s as a document, need a map or struct", rv.Type())
	}
	entries, err := objectEntries(rv)
	if err != nil {
		return nil, err
	}
	return &ast.Document{Entries: entries}, nil
}

// List converts a Go value into a V2 list. Maps and structs become one keyed
// item per key, slices become one item per element.
func List(v any) (ast.List, error) {
	switch l := v.(type) {
	case ast.List:
		return l, nil
	case *ast.Document:
		if l == nil {
			return ast.List{}, nil
		}
		return documentList(l.Entries), nil
	case ast.Document:
		return documentList(l.Entries), nil
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return ast.List{}, nil
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return objectItems(rv)
	case reflect.Slice, reflect.Array:
		list := ast.List{}
		for i := 0; i < rv.Len(); i++ {
			elem := indirect(rv.Index(i))
			if _, ok := scalar(elem); ok {
				return nil, fmt.Errorf("nyml: cannot marshal a scalar at the document root, plain strings need a key")
			}
			items, err := List(elem.Interface())
			if err != nil {
				return nil, err
			}
			list = append(list, items...)
		}
		return list, nil
	}
	return nil, fmt.Errorf("nyml: cannot marshal %s as a list", rv.Type())
}

// indirect follows pointers and interfaces. It returns the zero Value for nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.Type().Implements(textMarshalerType) && !v.IsNil() {
			return v
		}
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// scalar renders v as a string if it is a scalar kind. Invalid values
// render as the empty string.
func scalar(v reflect.Value) (string, bool) {
	if !v.IsValid() {
		return "", true
	}
	if v.Type().Implements(textMarshalerType) {
		b, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err == nil {
			return string(b), true
		}
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	}
	return "", false
}

type member struct {
	key   string
	value reflect.Value
}

// members lists the key/value pairs of a map (sorted by key) or a struct
// (declaration order).
func members(v reflect.Value) ([]member, error) {
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("nyml: map key type must be a string, got %s", v.Type().Key())
		}
		keys := lo.Map(v.MapKeys(), func(k reflect.Value, _ int) string { return k.String() })
		slices.Sort(keys)

		out := make([]member, 0, len(keys))
		for _, k := range keys {
			out = append(out, member{key: k, value: v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key()))})
		}
		return out, nil
	case reflect.Struct:
		fields := mapper.Fields(v.Type())
		out := make([]member, 0, len(fields))
		for _, f := range fields {
			fv, ok := mapper.FieldByIndex(v, f.Index)
			if !ok {
				continue
			}
			if f.OmitEmpty && mapper.IsEmptyValue(fv) {
				continue
			}
			out = append(out, member{key: f.Name, value: fv})
		}
		return out, nil
	}
	return nil, fmt.Errorf("nyml: unsupported type for marshaling: %s", v.Type())
}

func objectEntries(v reflect.Value) ([]*ast.Entry, error) {
	ms, err := members(v)
	if err != nil {
		return nil, err
	}
	entries := []*ast.Entry{}
	for _, m := range ms {
		entries, err = appendEntries(entries, m.key, m.value)
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// appendEntries appends the entries for key. Sequences of scalars become a
// single multiline value; sequences holding objects repeat the key.
func appendEntries(entries []*ast.Entry, key string, v reflect.Value) ([]*ast.Entry, error) {
	v = indirect(v)
	if s, ok := scalar(v); ok {
		return append(entries, &ast.Entry{Key: key, Value: s}), nil
	}

	switch v.Kind() {
	case reflect.Map, reflect.Struct:
		children, err := objectEntries(v)
		if err != nil {
			return nil, err
		}
		return append(entries, &ast.Entry{Key: key, Children: children}), nil
	case reflect.Slice, reflect.Array:
		lines, ok := scalarLines(v)
		if ok {
			value := ""
			if len(lines) > 0 {
				value = strings.Join(lines, "\n") + "\n"
			}
			return append(entries, &ast.Entry{Key: key, Value: value}), nil
		}
		var err error
		for i := 0; i < v.Len(); i++ {
			entries, err = appendEntries(entries, key, v.Index(i))
			if err != nil {
				return nil, err
			}
		}
		return entries, nil
	}
	return nil, fmt.Errorf("nyml: unsupported type for marshaling: %s", v.Type())
}

// scalarLines renders a sequence whose elements are all scalars.
func scalarLines(v reflect.Value) ([]string, bool) {
	lines := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		s, ok := scalar(indirect(v.Index(i)))
		if !ok {
			return nil, false
		}
		lines = append(lines, s)
	}
	return lines, true
}

func objectItems(v reflect.Value) (ast.List, error) {
	ms, err := members(v)
	if err != nil {
		return nil, err
	}
	list := ast.List{}
	for _, m := range ms {
		item, err := keyedItem(m.key, m.value)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, nil
}

func keyedItem(key string, v reflect.Value) (*ast.KeyedItem, error) {
	v = indirect(v)
	if s, ok := scalar(v); ok {
		return &ast.KeyedItem{Key: key, Value: s}, nil
	}

	var (
		list ast.List
		err  error
	)
	switch v.Kind() {
	case reflect.Map, reflect.Struct:
		list, err = objectItems(v)
	case reflect.Slice, reflect.Array:
		list, err = sequenceItems(v)
	default:
		return nil, fmt.Errorf("nyml: unsupported type for marshaling: %s", v.Type())
	}
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("nyml: cannot marshal empty %s for key %q", v.Kind(), key)
	}
	return &ast.KeyedItem{Key: key, List: list}, nil
}

func sequenceItems(v reflect.Value) (ast.List, error) {
	list := ast.List{}
	for i := 0; i < v.Len(); i++ {
		elem := indirect(v.Index(i))
		if s, ok := scalar(elem); ok {
			list = append(list, &ast.PlainString{Text: s})
			continue
		}
		switch elem.Kind() {
		case reflect.Map, reflect.Struct:
			items, err := objectItems(elem)
			if err != nil {
				return nil, err
			}
			list = append(list, items...)
		default:
			return nil, fmt.Errorf("nyml: cannot marshal nested %s inside a list", elem.Type())
		}
	}
	return list, nil
}

// documentList converts V1 entries into V2 keyed items.
func documentList(entries []*ast.Entry) ast.List {
	list := make(ast.List, 0, len(entries))
	for _, e := range entries {
		item := &ast.KeyedItem{Key: e.Key, QuotedKey: e.QuotedKey, Line: e.Line}
		if e.IsObject() {
			item.List = documentList(e.Children)
		} else {
			item.Value = e.Value
		}
		list = append(list, item)
	}
	return list
}
