// internal/extractapp/app.go
package extractapp

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
	"clstr/internal/seqdb"
	"clstr/internal/writers"
)

const name = "clstr-extract"

// Options holds the extraction tool's flags.
type Options struct {
	clibase.Common
	All    bool
	Output string
}

// RunContext emits the representative sequence of every cluster (or all
// member sequences with --all) as FASTA, resolving ids against the database
// the clustering was derived from. Ids missing from the database are
// reported as warnings, not errors.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	var opt Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Register(fs, &opt.Common)
	fs.BoolVar(&opt.All, "all", false, "emit every member, not just the representative [false]")
	fs.BoolVar(&opt.All, "a", false, "alias of --all")
	fs.StringVar(&opt.Output, "output", "-", "destination FASTA ('-' = STDOUT, .gz compresses) [-]")
	fs.StringVar(&opt.Output, "o", "-", "alias of --output")
	clibase.UsageCommon(fs, name, "extract cluster sequences from a FASTA database", "<FILE> <DATABASE>", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "\nSelection:")
		fmt.Fprintf(out, "  -a, --all                   Emit every member, not just the representative [%s]\n", def("all"))
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Destination FASTA ('-' = STDOUT, .gz compresses) [%s]\n", def("output"))
	})

	pos, code, handled := clibase.Startup(fs, &opt.Common, name, argv, outw, stderr)
	if handled {
		return code
	}
	args, err := cliutil.Positionals(pos, 2, "<FILE> <DATABASE>")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := cmdutil.NewLogger(stderr, opt.Quiet, opt.Verbose)

	db, err := seqdb.Load(args[1])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger.Debug("database loaded", "records", db.Len())

	in, err := clstr.Open(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = in.Close() }()

	sink, closeOut, err := writers.OpenOut(opt.Output, outw)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	emit := func(id string) error {
		rec, ok := db.Get(id)
		if !ok {
			logger.Warn("sequence not in database", "id", id)
			return nil
		}
		return output.WriteFASTARecord(sink, rec)
	}

	_, perr := cmdutil.ForEach(ctx, clstr.NewMonotonic(in), func(c *clstr.Cluster) error {
		if opt.All {
			for i := range c.Members {
				if err := emit(c.Members[i].SequenceID); err != nil {
					return err
				}
			}
			return nil
		}
		if rep := c.Representative(); rep != nil {
			return emit(rep.SequenceID)
		}
		return nil
	})
	if perr != nil {
		_ = closeOut()
		return cmdutil.ExitCode(perr, stderr)
	}
	if err := closeOut(); err != nil {
		return cmdutil.ExitCode(err, stderr)
	}
	return clibase.FlushCode(outw, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
