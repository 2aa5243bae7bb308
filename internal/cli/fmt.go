package cli

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/KimNorgaard/go-nyml"
	"github.com/KimNorgaard/go-nyml/internal/config"
)

type fmtCommand struct {
	ParseFlags
	Indent int       `long:"indent"      description:"Spaces per nesting level"`
	Write  bool      `short:"w" long:"write" description:"Rewrite local files in place instead of printing"`
	Args   inputArgs `positional-args:"yes"`

	app *app
}

func (c *fmtCommand) overrides() config.Overrides {
	o := c.ParseFlags.overrides()
	o.Indent = c.Indent
	return o
}

// Execute implements goFlags.Commander
func (c *fmtCommand) Execute(_ []string) error {
	if c.Write {
		if lo.Contains(c.Args.Inputs, stdinName) {
			return errors.New("Cannot rewrite stdin in place")
		}
		if remote := lo.Filter(c.Args.Inputs, func(name string, _ int) bool { return !isLocal(name) }); len(remote) > 0 {
			return errors.Newf("Cannot rewrite non-local inputs in place: %v", strings.Join(remote, ", "))
		}
	}
	opts := append(c.app.cfg.ParseOptions(), c.app.cfg.EncodeOptions()...)
	results := c.app.each(c.Args.Inputs, func(data []byte) ([]byte, error) {
		if c.V2 {
			return nyml.FormatV2(data, opts...)
		}
		return nyml.Format(data, opts...)
	})
	if err := c.app.failed(results); err != nil {
		return err
	}

	for _, r := range results {
		if !c.Write {
			if _, err := os.Stdout.Write(r.out); err != nil {
				return errors.Wrap(err, "Write output")
			}
			continue
		}
		c.app.log.Debugf("Rewriting %v", r.name)
		if err := os.WriteFile(r.name, r.out, 0o644); err != nil {
			return errors.Wrapf(err, "Rewrite %v", r.name)
		}
	}
	return nil
}
