// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the shared CLI logger. Warnings are on by default;
// -quiet drops them, -verbose enables debug output.
func NewLogger(w io.Writer, quiet, verbose bool) *log.Logger {
	l := log.New(w)
	switch {
	case verbose:
		l.SetLevel(log.DebugLevel)
	case quiet:
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.WarnLevel)
	}
	return l
}
