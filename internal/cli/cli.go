// Package cli implements the nyml command.
package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-nyml/internal/config"
	"github.com/KimNorgaard/go-nyml/internal/logger"
)

// Version is printed by --version.
var Version = "v0.1.0"

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Flags represents the global command line flags
type Flags struct {
	Version  bool   `short:"v" long:"version"   description:"Print the program version"`
	LogLevel string `short:"l" long:"log-level" description:"Logging level, a name or a number from 0 (least verbose) to 6 (most verbose)"`
	Config   string `short:"c" long:"config"    description:"NYML config file to read settings from"`
}

type app struct {
	flags Flags
	cfg   config.Config
	log   *logrus.Logger
}

// setup loads the config, with overrides taken from the active command.
func (a *app) setup(overrides config.Overrides) error {
	overrides.LogLevel = a.flags.LogLevel
	cfg, err := config.Load(a.log, a.flags.Config, overrides)
	if err != nil {
		return errors.Wrap(err, "Read config")
	}
	lvl, _ := logger.ParseLevel(cfg.LogLevel)
	a.log.SetLevel(lvl)
	a.cfg = cfg
	return nil
}

// overrider is implemented by commands whose flags override config settings.
type overrider interface {
	overrides() config.Overrides
}

// Run executes the nyml command with the given arguments and returns the
// process exit code.
func Run(args []string) int {
	a := &app{log: logger.New(logrus.InfoLevel)}

	parser := goFlags.NewParser(&a.flags, goFlags.Options(goFlags.Default))
	parser.Name = "nyml"
	parser.SubcommandsOptional = true
	addCommands(parser, a)

	executed := false
	parser.CommandHandler = func(cmd goFlags.Commander, args []string) error {
		if a.flags.Version || cmd == nil {
			return nil
		}
		executed = true
		var overrides config.Overrides
		if o, ok := cmd.(overrider); ok {
			overrides = o.overrides()
		}
		if err := a.setup(overrides); err != nil {
			return err
		}
		return cmd.Execute(args)
	}

	_, err := parser.ParseArgs(args)
	switch {
	case IsErrOfType(err, goFlags.ErrHelp):
		// Help message is printed by go-flags
		return ExitOK
	case err == nil && a.flags.Version:
		fmt.Println(Version)
		return ExitOK
	case err == nil && !executed:
		parser.WriteHelp(os.Stderr)
		return ExitUsage
	case err == nil:
		return ExitOK
	case isFlagsErr(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

func addCommands(parser *goFlags.Parser, a *app) {
	mustAdd := func(name, short, long string, data interface{}) {
		if _, err := parser.AddCommand(name, short, long, data); err != nil {
			panic(errors.Wrapf(err, "Add command %v", name))
		}
	}
	mustAdd("parse", "Parse NYML into JSON or YAML",
		"Parse each input and print the collapsed mapping, the ordered entries or the V2 list.",
		&parseCommand{app: a})
	mustAdd("encode", "Encode JSON as NYML",
		"Read a JSON value, or entries JSON with --entries, and print it as NYML.",
		&encodeCommand{app: a})
	mustAdd("check", "Validate NYML inputs",
		"Parse each input and report every error with its code and position.",
		&checkCommand{app: a})
	mustAdd("fmt", "Reformat NYML inputs",
		"Parse each input and print it in canonical form, or rewrite files in place with --write.",
		&fmtCommand{app: a})
}

// IsErrOfType returns true if <err> is of type <t>
func IsErrOfType(err error, t goFlags.ErrorType) bool {
	goFlagsErr := &goFlags.Error{}
	if ok := errors.As(err, &goFlagsErr); ok && goFlagsErr.Type == t {
		return true
	}
	return false
}

func isFlagsErr(err error) bool {
	goFlagsErr := &goFlags.Error{}
	return errors.As(err, &goFlagsErr)
}
