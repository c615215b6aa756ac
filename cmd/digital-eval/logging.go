package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger maps the -v count to a level: warn, info, debug, then trace
func newLogger(verbosity int, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	switch {
	case verbosity <= 0:
		l.SetLevel(logrus.WarnLevel)
	case verbosity == 1:
		l.SetLevel(logrus.InfoLevel)
	case verbosity == 2:
		l.SetLevel(logrus.DebugLevel)
	default:
		l.SetLevel(logrus.TraceLevel)
	}
	return l
}
