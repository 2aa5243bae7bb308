package cli

import (
	"bytes"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// render encodes v as indented JSON, or as YAML when format is "yaml". Key
// order of the JSON encoding is kept in the YAML output.
func render(v any, format string) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "Encode JSON")
	}
	if format != "yaml" {
		return append(b, '\n'), nil
	}
	return jsonToYAML(b)
}

func jsonToYAML(b []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, errors.Wrap(err, "Read JSON as YAML")
	}
	clearStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, errors.Wrap(err, "Encode YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "Encode YAML")
	}
	return buf.Bytes(), nil
}

// clearStyle drops the flow and quoting styles that JSON syntax implies, so
// the encoder picks block style and quotes only where needed.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// joinDocuments concatenates rendered outputs, separating YAML documents with
// "---".
func joinDocuments(outs [][]byte, format string) []byte {
	sep := []byte{}
	if format == "yaml" {
		sep = []byte("---\n")
	}
	return bytes.Join(outs, sep)
}
