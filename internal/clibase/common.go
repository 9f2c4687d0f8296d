// internal/clibase/common.go
package clibase

import "flag"

// Common holds the CLI fields shared by every clstr tool.
type Common struct {
	Quiet   bool
	Verbose bool
	Version bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "enable debug output [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
}
