package cli

import (
	"github.com/samber/lo"

	"github.com/KimNorgaard/go-nyml"
	"github.com/KimNorgaard/go-nyml/internal/config"
)

// ParseFlags are shared by the commands that parse NYML.
type ParseFlags struct {
	V2        bool   `long:"v2"         description:"Use the V2 list grammar"`
	Strict    bool   `long:"strict"     description:"Report tabs and inconsistent sibling indentation as BAD_INDENT"`
	NoStrict  bool   `long:"no-strict"  description:"Turn off strict mode set in the config file"`
	EOF       string `long:"eof"        description:"Multiline block at end of input" choice:"close" choice:"error"`
	Unquote   bool   `long:"unquote"    description:"Strip one pair of surrounding double quotes from values"`
	NoUnquote bool   `long:"no-unquote" description:"Keep quotes even if the config file sets unquote"`
}

func (f ParseFlags) overrides() config.Overrides {
	return config.Overrides{
		Config:  config.Config{EOF: f.EOF},
		Strict:  toggle(f.Strict, f.NoStrict),
		Unquote: toggle(f.Unquote, f.NoUnquote),
	}
}

// toggle returns nil when neither flag is given. The "no" flag wins.
func toggle(on, off bool) *bool {
	switch {
	case off:
		return lo.ToPtr(false)
	case on:
		return lo.ToPtr(true)
	}
	return nil
}

type inputArgs struct {
	Inputs []string `positional-arg-name:"INPUT" description:"File path, URL or - for stdin" required:"1"`
}

type parseCommand struct {
	ParseFlags
	Entries  bool      `long:"entries" description:"Print the ordered entries instead of the collapsed mapping"`
	Strategy string    `long:"strategy" description:"Duplicate key strategy" choice:"first" choice:"last" choice:"all"`
	Format   string    `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml"`
	Output   string    `short:"o" long:"output" description:"Write output to FILE instead of stdout" value-name:"FILE"`
	Args     inputArgs `positional-args:"yes"`

	app *app
}

func (c *parseCommand) overrides() config.Overrides {
	o := c.ParseFlags.overrides()
	o.Strategy = c.Strategy
	o.Format = c.Format
	return o
}

// Execute implements goFlags.Commander
func (c *parseCommand) Execute(_ []string) error {
	cfg := c.app.cfg
	results := c.app.each(c.Args.Inputs, func(data []byte) ([]byte, error) {
		v, err := c.parse(data, cfg)
		if err != nil {
			return nil, err
		}
		return render(v, cfg.Format)
	})
	if err := c.app.failed(results); err != nil {
		return err
	}

	w, err := create(c.Output)
	if err != nil {
		return err
	}
	defer w.Close()
	outs := lo.Map(results, func(r result, _ int) []byte { return r.out })
	_, err = w.Write(joinDocuments(outs, cfg.Format))
	return err
}

func (c *parseCommand) parse(data []byte, cfg config.Config) (any, error) {
	opts := cfg.ParseOptions()
	switch {
	case c.V2:
		return nyml.ParseV2(data, opts...)
	case c.Entries:
		return nyml.ParseDocument(data, opts...)
	default:
		return nyml.Parse(data, opts...)
	}
}
