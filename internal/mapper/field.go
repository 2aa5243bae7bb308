package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// TagName is the struct tag read for field names and options.
const TagName = "nyml"

// Field represents a cached struct field.
type Field struct {
	Name      string
	Index     []int
	Tagged    bool
	OmitEmpty bool
}

// fieldCache caches the ordered fields of a struct type.
var fieldCache sync.Map

// Fields returns the encodable fields of struct type t in declaration order.
// It skips unexported fields and fields tagged with `nyml:"-"`. Fields of
// untagged embedded structs are promoted into the parent.
func Fields(t reflect.Type) []Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}

	fields := typeFields(t, nil)
	fieldCache.Store(t, fields)
	return fields
}

func typeFields(t reflect.Type, index []int) []Field {
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get(TagName)
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		idx := append(append([]int(nil), index...), sf.Index...)

		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				fields = append(fields, typeFields(ft, idx)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}

		f := Field{Index: idx}
		if name != "" {
			f.Name = name
			f.Tagged = true
		} else {
			f.Name = sf.Name
		}

		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			if opt == "omitempty" {
				f.OmitEmpty = true
			}
		}
		fields = append(fields, f)
	}
	return fields
}

// FieldByIndex walks index from v, returning false when it crosses a nil
// embedded pointer.
func FieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

// IsEmptyValue reports whether v is empty in the encoding/json sense:
// false, 0, a nil pointer, a nil interface value, and any empty array,
// slice, map, or string.
func IsEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
