// Package logging holds the loggers shared by the whole engine.
//
// All three are logrus loggers, so besides the usual Println/Printf/Fatalf they
// support leveled and structured logging (e.g. ErrLog.WithField("shader", path).Error(...)).
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLog = newLogger(os.Stdout, logrus.InfoLevel)
	WarnLog = newLogger(os.Stdout, logrus.InfoLevel)
	ErrLog  = newLogger(os.Stderr, logrus.InfoLevel)
)

func newLogger(out io.Writer, lvl logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Out: out,
		Formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		},
		Hooks:    make(logrus.LevelHooks),
		Level:    lvl,
		ExitFunc: os.Exit,
	}
}

// SetLevel parses a logrus level name (e.g. "debug", "warn") and applies it to all loggers.
// Unknown names leave the level untouched and return the parse error.
func SetLevel(levelName string) error {

	lvl, err := logrus.ParseLevel(levelName)
	if err != nil {
		return err
	}

	InfoLog.SetLevel(lvl)
	WarnLog.SetLevel(lvl)
	ErrLog.SetLevel(lvl)
	return nil
}

// SetOutput redirects all loggers, mostly useful in tests
func SetOutput(w io.Writer) {
	InfoLog.SetOutput(w)
	WarnLog.SetOutput(w)
	ErrLog.SetOutput(w)
}
