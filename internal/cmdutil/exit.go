// internal/cmdutil/exit.go
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"

	"clstr/internal/writers"
)

// ExitCode maps a tool's terminal error to its process exit code:
// 0 for nil or a downstream consumer closing early, 130 for cancellation,
// 3 for anything else (printed to stderr).
func ExitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case writers.IsBrokenPipe(err):
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		fmt.Fprintln(stderr, err)
		return 3
	}
}
