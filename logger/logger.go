// Package logger provides a configurable logger shared by linprog components.
//
// The root logger uses github.com/rs/zerolog with a console writer and is
// silenced automatically under `go test`; solver entry points take the
// current logger at call time, so Set/Disable affect subsequent solves only.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	if strings.HasSuffix(os.Args[0], ".test") {
		log = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

// Set allows a user to override the global logger.
func Set(l zerolog.Logger) {
	log = l
}

// Disable disables logging globally.
func Disable() {
	log = zerolog.Nop()
}

// Logger returns the current global logger.
func Logger() zerolog.Logger {
	return log
}
