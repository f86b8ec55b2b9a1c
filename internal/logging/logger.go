// Package logging holds the zerolog logger used by tabstitch for debug output.
package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// logger holds the package-level logger. Nil means disabled.
var logger atomic.Pointer[zerolog.Logger]

// SetLogger configures the package-level logger. Pass nil to disable output.
//
// SetLogger is safe for concurrent use.
//
// Example enabling debug output to stderr:
//
//	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
//	tabstitch.SetLogger(&l)
func SetLogger(l *zerolog.Logger) {
	logger.Store(l)
}

// Logger returns the package-level logger, or a disabled logger when none
// has been set.
//
// Logger is safe for concurrent use.
func Logger() *zerolog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}
