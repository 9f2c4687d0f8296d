// internal/clibase/startup.go
package clibase

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"clstr/internal/cliutil"
	"clstr/internal/version"
	"clstr/internal/writers"
)

// Startup parses argv for a tool, handling -h and -version uniformly.
// When handled is true the app should return code immediately; otherwise
// posArgs holds the positional arguments.
func Startup(fs *flag.FlagSet, c *Common, name string, argv []string, outw *bufio.Writer, stderr io.Writer) (posArgs []string, code int, handled bool) {
	fs.SetOutput(io.Discard)
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)

	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return nil, FlushCode(outw, stderr), true
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if fc := FlushCode(outw, stderr); fc != 0 {
			return nil, fc, true
		}
		return nil, 2, true
	}
	if c.Version {
		fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return nil, FlushCode(outw, stderr), true
	}
	return posArgs, 0, false
}

// FlushCode flushes outw and maps the result to an exit code: broken pipe
// counts as success, any other failure is a runtime error.
func FlushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
