package clasp

import (
	"io"
	"log"
	"os"
)

// Options configures the root environment of a program.
type Options struct {
	// Stdout receives the output of print, defaults to os.Stdout.
	Stdout io.Writer

	// Logger receives evaluation traces, discarded by default.
	Logger *log.Logger

	// HostEval installs the host primitive, which evaluates Go constant
	// expressions.
	HostEval bool

	// ReadFile is used by load and RunFile, defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

var discardLogger = log.New(io.Discard, "", 0)

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = discardLogger
	}
	if o.ReadFile == nil {
		o.ReadFile = os.ReadFile
	}
	return o
}
