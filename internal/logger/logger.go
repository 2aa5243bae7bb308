package logger

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// New returns new configured logger writing to stderr
func New(lvl logrus.Level) *logrus.Logger {
	formatter := prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.Stamp,
		ForceFormatting: true,
	}
	log := logrus.Logger{
		Out:       os.Stderr,
		Formatter: &formatter,
		Level:     lvl,
		Hooks:     make(logrus.LevelHooks),
	}
	return &log
}

// ParseLevel parses a level name such as "debug" or a number from 0 (panic)
// to 6 (trace).
func ParseLevel(s string) (logrus.Level, error) {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= int(logrus.TraceLevel) {
		return logrus.Level(n), nil
	}
	return logrus.ParseLevel(s)
}
