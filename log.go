package j1979

import (
	"log"

	"github.com/fatih/color"
)

// Logger is the decoder's logging collaborator (spec'd in the
// External Interfaces section): diagnostic-only, never consulted for
// control flow.
type Logger interface {
	Warn(tag, message string)
	Trace(tag, message string)
}

var (
	yellow = color.New(color.FgYellow).SprintfFunc()
	red    = color.New(color.FgRed).SprintfFunc()
)

// stdLogger is the default Logger, printing through the standard
// library logger with color-coded tags the way gocan's console
// helpers annotate frames.
type stdLogger struct {
	trace bool
}

func (l stdLogger) Warn(tag, message string) {
	log.Println(red("[%s] %s", tag, message))
}

func (l stdLogger) Trace(tag, message string) {
	if !l.trace {
		return
	}
	log.Println(yellow("[%s] %s", tag, message))
}

// NewLogger returns the default Logger. When trace is false, Trace
// calls are silently dropped; Warn is always emitted.
func NewLogger(trace bool) Logger {
	return stdLogger{trace: trace}
}
