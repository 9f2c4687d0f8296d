// internal/topapp/app.go
package topapp

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
	"clstr/internal/common"
	"clstr/internal/writers"
)

const name = "clstr-top"

// Options holds the top-N tool's flags.
type Options struct {
	clibase.Common
	N      int
	Output string
}

// RunContext selects the N largest clusters and writes them as a valid
// .clstr stream. Selection needs a global sort, so this tool buffers the
// whole report (the original utility did the same).
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	var opt Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Register(fs, &opt.Common)
	fs.IntVar(&opt.N, "number", 500, "number of clusters to keep [500]")
	fs.IntVar(&opt.N, "n", 500, "alias of --number")
	fs.StringVar(&opt.Output, "output", "-", "destination .clstr ('-' = STDOUT, .gz compresses) [-]")
	fs.StringVar(&opt.Output, "o", "-", "alias of --output")
	clibase.UsageCommon(fs, name, "select the largest clusters from a report", "<FILE>", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nSelection:")
		fmt.Fprintf(out, "  -n, --number int            Number of clusters to keep [%s]\n", def("number"))
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Destination .clstr ('-' = STDOUT, .gz compresses) [%s]\n", def("output"))
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
	if opt.N <= 0 {
		fmt.Fprintln(stderr, "--number must be > 0")
		return 2
	}
	logger := cmdutil.NewLogger(stderr, opt.Quiet, opt.Verbose)

	in, err := clstr.Open(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = in.Close() }()

	cs, err := clstr.ReadAll(clstr.NewMonotonic(in))
	if err != nil {
		return cmdutil.ExitCode(err, stderr)
	}
	logger.Debug("report loaded", "clusters", len(cs))

	common.SortClusters(cs)
	if opt.N < len(cs) {
		cs = cs[:opt.N]
	}

	cw, closeOut, err := writers.OpenClstr(opt.Output, outw)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	for _, c := range cs {
		select {
		case <-ctx.Done():
			_ = closeOut()
			return cmdutil.ExitCode(ctx.Err(), stderr)
		default:
		}
		if err := cw.WriteCluster(c); err != nil {
			_ = closeOut()
			return cmdutil.ExitCode(err, stderr)
		}
	}
	if err := closeOut(); err != nil {
		return cmdutil.ExitCode(err, stderr)
	}
	return clibase.FlushCode(outw, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
