// internal/statsapp/app.go
package statsapp

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
	"clstr/internal/output"
	"clstr/internal/pretty"
	"clstr/internal/writers"
)

const name = "clstr-stats"

// Options holds the stats tool's flags.
type Options struct {
	clibase.Common
	Format string
	Table  bool
	Pretty bool
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	var opt Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Register(fs, &opt.Common)
	fs.StringVar(&opt.Format, "format", "text", "output: text | tsv | json [text]")
	fs.StringVar(&opt.Format, "f", "text", "alias of --format")
	fs.BoolVar(&opt.Table, "table", false, "print one id<TAB>size row per cluster [false]")
	fs.BoolVar(&opt.Table, "t", false, "alias of --table")
	fs.BoolVar(&opt.Pretty, "pretty", false, "colorized stats block (text) [false]")
	clibase.UsageCommon(fs, name, "statistics on a cluster report", "<FILE>", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -f, --format string         Output: text | tsv | json [%s]\n", def("format"))
		fmt.Fprintf(out, "  -t, --table                 Print one id<TAB>size row per cluster [%s]\n", def("table"))
		fmt.Fprintf(out, "      --pretty                Colorized stats block (text) [%s]\n", def("pretty"))
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
	if !writers.StatsFormats(opt.Format) {
		fmt.Fprintf(stderr, "invalid --format %q\n", opt.Format)
		return 2
	}
	logger := cmdutil.NewLogger(stderr, opt.Quiet, opt.Verbose)

	in, err := clstr.Open(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = in.Close() }()
	src := clstr.NewMonotonic(in)

	if opt.Table {
		if _, perr := cmdutil.ForEach(ctx, src, func(c *clstr.Cluster) error {
			return output.WriteTableRow(outw, c)
		}); perr != nil {
			return cmdutil.ExitCode(perr, stderr)
		}
		return clibase.FlushCode(outw, stderr)
	}

	var s output.Stats
	n, perr := cmdutil.ForEach(ctx, src, func(c *clstr.Cluster) error {
		s.Add(c)
		return nil
	})
	if perr != nil {
		return cmdutil.ExitCode(perr, stderr)
	}
	logger.Debug("report scanned", "clusters", n)

	if opt.Pretty && opt.Format == "text" {
		if _, err := io.WriteString(outw, pretty.RenderStats(s, pretty.DefaultOptions)); err != nil {
			return cmdutil.ExitCode(err, stderr)
		}
	} else if err := writers.WriteStats(opt.Format, outw, s); err != nil {
		return cmdutil.ExitCode(err, stderr)
	}
	return clibase.FlushCode(outw, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
