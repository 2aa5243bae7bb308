package cli

import (
	"os"

	"github.com/KimNorgaard/go-nyml"
)

type checkCommand struct {
	ParseFlags
	Quiet bool      `short:"q" long:"quiet" description:"Do not print inputs that parse cleanly"`
	Args  inputArgs `positional-args:"yes"`

	app *app
}

// Execute implements goFlags.Commander
func (c *checkCommand) Execute(_ []string) error {
	opts := c.app.cfg.ParseOptions()
	results := c.app.each(c.Args.Inputs, func(data []byte) ([]byte, error) {
		if c.V2 {
			_, err := nyml.ParseV2(data, opts...)
			return nil, err
		}
		_, err := nyml.ParseDocument(data, opts...)
		return nil, err
	})
	if !c.Quiet {
		for _, r := range results {
			if r.err == nil {
				reportOK(os.Stdout, r.name)
			}
		}
	}
	return c.app.failed(results)
}
