package cli

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"github.com/KimNorgaard/go-nyml"
	"github.com/KimNorgaard/go-nyml/ast"
	"github.com/KimNorgaard/go-nyml/internal/config"
)

type encodeCommand struct {
	Entries bool   `long:"entries" description:"Read the entries JSON printed by parse --entries"`
	V2      bool   `long:"v2"      description:"Write V2 instead of V1"`
	Indent  int    `long:"indent"  description:"Spaces per nesting level"`
	Output  string `short:"o" long:"output" description:"Write output to FILE instead of stdout" value-name:"FILE"`
	Args    struct {
		Input string `positional-arg-name:"INPUT" description:"JSON file path, URL or - for stdin" required:"yes"`
	} `positional-args:"yes"`

	app *app
}

func (c *encodeCommand) overrides() config.Overrides {
	return config.Overrides{Config: config.Config{Indent: c.Indent}}
}

// Execute implements goFlags.Commander
func (c *encodeCommand) Execute(_ []string) error {
	opts := c.app.cfg.EncodeOptions()
	results := c.app.each([]string{c.Args.Input}, func(data []byte) ([]byte, error) {
		v, err := c.decode(data)
		if err != nil {
			return nil, err
		}
		if c.V2 {
			return nyml.MarshalV2(v, opts...)
		}
		return nyml.Marshal(v, opts...)
	})
	if err := c.app.failed(results); err != nil {
		return err
	}

	w, err := create(c.Output)
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(results[0].out)
	return err
}

// decode reads a JSON value with numbers kept as written.
func (c *encodeCommand) decode(data []byte) (any, error) {
	if c.Entries {
		var doc ast.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "Decode entries JSON")
		}
		return &doc, nil
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "Decode JSON")
	}
	return v, nil
}
