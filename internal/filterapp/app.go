// internal/filterapp/app.go
package filterapp

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"

	"clstr-core/clstr"
	"clstr/internal/clibase"
	"clstr/internal/cliutil"
	"clstr/internal/cmdutil"
	"clstr/internal/writers"
)

const name = "clstr-filter"

// Options holds the filter tool's flags.
type Options struct {
	clibase.Common
	Min             int
	Output          string
	NoMatchExitCode int
}

// RunContext keeps clusters with at least --min-size members. The pass is
// fully streaming: one cluster in memory at a time.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	var opt Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Register(fs, &opt.Common)
	fs.IntVar(&opt.Min, "min-size", 20, "minimum members for a cluster to be kept [20]")
	fs.IntVar(&opt.Min, "n", 20, "alias of --min-size")
	fs.StringVar(&opt.Output, "output", "-", "destination .clstr ('-' = STDOUT, .gz compresses) [-]")
	fs.StringVar(&opt.Output, "o", "-", "alias of --output")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no cluster meets the threshold [1]")
	clibase.UsageCommon(fs, name, "keep clusters with at least N members", "<FILE>", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nSelection:")
		fmt.Fprintf(out, "  -n, --min-size int          Minimum members for a cluster to be kept [%s]\n", def("min-size"))
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Destination .clstr ('-' = STDOUT, .gz compresses) [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no cluster meets the threshold [%s]\n", def("no-match-exit-code"))
	})

	pos, code, handled := clibase.Startup(fs, &opt.Common, name, argv, outw, stderr)
	if handled {
		return code
	}
	args, err := cliutil.Positionals(pos, 1, "<FILE>")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opt.Min < 1 {
		fmt.Fprintln(stderr, "--min-size must be ≥ 1")
		return 2
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 255 {
		fmt.Fprintln(stderr, "--no-match-exit-code must be between 0 and 255")
		return 2
	}
	logger := cmdutil.NewLogger(stderr, opt.Quiet, opt.Verbose)

	in, err := clstr.Open(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = in.Close() }()

	cw, closeOut, err := writers.OpenClstr(opt.Output, outw)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	kept := 0
	total, perr := cmdutil.ForEach(ctx, clstr.NewMonotonic(in), func(c *clstr.Cluster) error {
		if c.Size() < opt.Min {
			return nil
		}
		kept++
		return cw.WriteCluster(c)
	})
	if perr != nil {
		_ = closeOut()
		return cmdutil.ExitCode(perr, stderr)
	}
	if err := closeOut(); err != nil {
		return cmdutil.ExitCode(err, stderr)
	}
	if fc := clibase.FlushCode(outw, stderr); fc != 0 {
		return fc
	}
	logger.Debug("filter finished", "scanned", total, "kept", kept)
	if kept == 0 {
		logger.Warn("no cluster met the size threshold", "min", opt.Min)
		return opt.NoMatchExitCode
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
