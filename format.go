package nyml

import "bytes"

// Format re-indents V1 source with a uniform indentation step. Entries keep
// their order and duplicates; comments and blank lines between entries are
// dropped. The Indent option sets the step, parse options apply as usual.
func Format(src []byte, opts ...Option) ([]byte, error) {
	doc, err := ParseDocument(src, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatV2 is Format for V2 source. Plain lines at the root are dropped.
func FormatV2(src []byte, opts ...Option) ([]byte, error) {
	list, err := ParseV2(src, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).EncodeV2(list); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
