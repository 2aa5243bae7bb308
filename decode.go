package nyml

import (
	"io"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"

	"github.com/KimNorgaard/go-nyml/ast"
	"github.com/KimNorgaard/go-nyml/internal/mapper"
)

// Decoder reads and decodes NYML values from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the NYML document from its input and stores it in the value
// pointed to by v. See Unmarshal for the conversion rules.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return errors.New("nyml: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return errors.Wrap(err, "nyml: read input")
	}
	return Unmarshal(data, v, d.opts...)
}

func unmarshal(data []byte, v any, o *options) error {
	switch out := v.(type) {
	case *ast.Document:
		doc, err := parseDocument(data, o)
		if err != nil {
			return err
		}
		*out = *doc
		return nil
	case *ast.List:
		list, err := parseList(data, o)
		if err != nil {
			return err
		}
		*out = list
		return nil
	case *Mapping:
		doc, err := parseDocument(data, o)
		if err != nil {
			return err
		}
		*out = Collapse(doc, o.strategy)
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Newf("nyml: Unmarshal(non-pointer %T or nil)", v)
	}

	doc, err := parseDocument(data, o)
	if err != nil {
		return err
	}
	return decodeMapping(Collapse(doc, o.strategy), v)
}

func decodeMapping(m Mapping, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			blockToSliceHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		TagName:          mapper.TagName,
		Squash:           true,
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return errors.Wrap(err, "nyml: create decoder")
	}
	if err := dec.Decode(m); err != nil {
		return errors.Wrapf(err, "nyml: decode into %T", v)
	}
	return nil
}

// blockToSliceHook splits a multiline value into one element per line when
// the target is a slice, the inverse of how sequences are encoded.
func blockToSliceHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice || to.Elem().Kind() == reflect.Uint8 {
		return data, nil
	}
	s := strings.TrimSuffix(reflect.ValueOf(data).String(), "\n")
	if s == "" {
		return []string{}, nil
	}
	return strings.Split(s, "\n"), nil
}
