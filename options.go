package nyml

import (
	"fmt"

	"github.com/KimNorgaard/go-nyml/internal/parser"
)

// Option configures parsing, encoding and decoding.
type Option func(*options) error

type options struct {
	strict   bool
	eof      EOFPolicy
	unquote  bool
	indent   *int
	strategy Strategy
}

func newOptions(opts []Option) (*options, error) {
	o := &options{strategy: StrategyLast}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *options) parserConfig() parser.Config {
	return parser.Config{
		Strict:  o.strict,
		EOF:     o.eof,
		Unquote: o.unquote,
	}
}

// EOFPolicy decides what happens when a multiline block runs to the end of
// the input.
type EOFPolicy = parser.EOFPolicy

const (
	// EOFClose closes the block implicitly. This is the default.
	EOFClose = parser.EOFClose
	// EOFError fails with UNTERMINATED_MULTILINE.
	EOFError = parser.EOFError
)

// Strict enables V1 indentation checks: tabs in leading whitespace and
// siblings with different indentation are reported as BAD_INDENT.
func Strict() Option {
	return func(o *options) error {
		o.strict = true
		return nil
	}
}

// OnEOFInMultiline sets the EOF policy for multiline blocks.
func OnEOFInMultiline(p EOFPolicy) Option {
	return func(o *options) error {
		if p != EOFClose && p != EOFError {
			return fmt.Errorf("nyml: unknown EOF policy %d", p)
		}
		o.eof = p
		return nil
	}
}

// UnquoteValues strips one pair of surrounding double quotes from V1 scalar
// values, so `name: "My App"` yields My App.
func UnquoteValues() Option {
	return func(o *options) error {
		o.unquote = true
		return nil
	}
}

// Indent sets the number of spaces per nesting level used by the encoder.
//
// The value n must be a positive integer.
func Indent(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("nyml: indent must be a positive integer")
		}
		o.indent = &n
		return nil
	}
}

// DuplicateStrategy selects how Parse and Unmarshal collapse repeated keys.
func DuplicateStrategy(s Strategy) Option {
	return func(o *options) error {
		if _, err := ParseStrategy(string(s)); err != nil {
			return err
		}
		o.strategy = s
		return nil
	}
}
