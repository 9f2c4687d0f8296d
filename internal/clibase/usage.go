// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"clstr/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. oneLine is the tool's
// one-line description, args the positional argument synopsis; extra prints
// the tool-specific flag block.
func UsageCommon(fs *flag.FlagSet, name, oneLine, args string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, oneLine)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] %s\n", name, args)
		fmt.Fprintln(out, "  <FILE> may be '-' for STDIN; .gz input is detected automatically")

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Enable debug output [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
