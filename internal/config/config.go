// Package config loads the settings of the nyml command.
package config

import (
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jinzhu/copier"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-nyml"
	"github.com/KimNorgaard/go-nyml/internal/logger"
	nymlparser "github.com/KimNorgaard/go-nyml/parsers/nyml"
)

// Config holds the settings shared by all commands.
type Config struct {
	// Number of inputs processed concurrently
	Workers int `koanf:"workers"`
	// Timeout for inputs fetched over HTTP
	Timeout time.Duration `koanf:"timeout"`
	// Duplicate key strategy: first, last or all
	Strategy string `koanf:"strategy"`
	Strict   bool   `koanf:"strict"`
	// Multiline block at end of input: close or error
	EOF     string `koanf:"eof"`
	Unquote bool   `koanf:"unquote"`
	// Output format of the parse command: json or yaml
	Format   string `koanf:"format"`
	Indent   int    `koanf:"indent"`
	LogLevel string `koanf:"log_level"`
}

var (
	eofPolicies = map[string]nyml.EOFPolicy{"close": nyml.EOFClose, "error": nyml.EOFError}
	formats     = []string{"json", "yaml"}
)

// Defaults returns the settings used when neither a config file nor a flag
// says otherwise.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"workers":   runtime.NumCPU(),
		"timeout":   "30s",
		"strategy":  string(nyml.StrategyLast),
		"strict":    false,
		"eof":       "close",
		"unquote":   false,
		"format":    "json",
		"indent":    2,
		"log_level": "info",
	}
}

// Overrides holds settings given on the command line. Empty fields of Config
// leave the loaded value alone, as do nil toggles; a non-nil toggle sets the
// flag either way.
type Overrides struct {
	Config
	Strict  *bool
	Unquote *bool
}

// Load reads the defaults, then the NYML file at path if path is not empty,
// then applies overrides on top.
func Load(log *logrus.Logger, path string, overrides Overrides) (Config, error) {
	ko := koanf.New(".")
	var cfg Config

	if err := ko.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return cfg, errors.Wrap(err, "Load defaults")
	}
	if path != "" {
		log.Debugf("Reading config from %v", path)
		if err := ko.Load(file.Provider(path), nymlparser.Parser()); err != nil {
			return cfg, errors.Wrapf(err, "Load config %v", path)
		}
	}

	err := ko.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			ErrorUnused:      true,
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return cfg, errors.Wrap(err, "Decode config")
	}

	if err := copier.CopyWithOption(&cfg, &overrides.Config, copier.Option{IgnoreEmpty: true}); err != nil {
		return cfg, errors.Wrap(err, "Apply command line overrides")
	}
	if overrides.Strict != nil {
		cfg.Strict = *overrides.Strict
	}
	if overrides.Unquote != nil {
		cfg.Unquote = *overrides.Unquote
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return errors.Newf("workers must be positive, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return errors.Newf("timeout must not be negative, got %v", c.Timeout)
	}
	if _, err := nyml.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, ok := eofPolicies[c.EOF]; !ok {
		return errors.Newf("unknown eof policy %q, want close or error", c.EOF)
	}
	if !lo.Contains(formats, c.Format) {
		return errors.Newf("unknown format %q, want json or yaml", c.Format)
	}
	if c.Indent <= 0 {
		return errors.Newf("indent must be positive, got %d", c.Indent)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// ParseOptions returns the library options for parsing V1 documents.
func (c Config) ParseOptions() []nyml.Option {
	opts := []nyml.Option{
		nyml.OnEOFInMultiline(eofPolicies[c.EOF]),
		nyml.DuplicateStrategy(nyml.Strategy(c.Strategy)),
	}
	if c.Strict {
		opts = append(opts, nyml.Strict())
	}
	if c.Unquote {
		opts = append(opts, nyml.UnquoteValues())
	}
	return opts
}

// EncodeOptions returns the library options for encoding.
func (c Config) EncodeOptions() []nyml.Option {
	return []nyml.Option{nyml.Indent(c.Indent)}
}
