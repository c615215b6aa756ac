package evaluation

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Policy decides how a failing entry affects the run
type Policy int

const (
	// FailFast aborts the whole run on the first failing entry
	FailFast Policy = iota
	// CollectErrors records failing entries and continues with the rest
	CollectErrors
)

// String returns the string representation of the policy.
func (p Policy) String() string {
	if p == CollectErrors {
		return "collect-errors"
	}
	return "fail-fast"
}

// Config holds the evaluator settings
type Config struct {
	Workers int                // Concurrent entries, 0 picks a value from the CPU count
	Policy  Policy             // Reaction to failing entries
	Logger  logrus.FieldLogger // Destination of progress and failure logs
}

// DefaultConfig returns a sequential, fail-fast configuration that logs nothing.
func DefaultConfig() Config {
	return Config{
		Workers: 1,
		Policy:  FailFast,
		Logger:  discardLogger(),
	}
}

// workers resolves the effective pool size
func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	if cpus := runtime.NumCPU(); cpus > 3 {
		return cpus - 1
	}
	return 1
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return discardLogger()
	}
	return c.Logger
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
