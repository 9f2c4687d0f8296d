// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals,
// preserving '-','--','--x=y' semantics. Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" {
			posArgs = append(posArgs, arg)
			continue
		}
		if strings.HasPrefix(arg, "-") {
			if strings.Contains(arg, "=") {
				flagArgs = append(flagArgs, arg)
				continue
			}
			name := strings.TrimLeft(arg, "-")
			flagArgs = append(flagArgs, arg)
			if !boolFlags[name] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
			continue
		}
		posArgs = append(posArgs, arg)
	}
	return
}

// Positionals checks that exactly want positional arguments were given and
// returns them. what names the expected arguments for the error message,
// e.g. "<FILE>" or "<FILE> <DATABASE>".
func Positionals(posArgs []string, want int, what string) ([]string, error) {
	switch {
	case len(posArgs) < want:
		return nil, fmt.Errorf("missing argument: expected %s", what)
	case len(posArgs) > want:
		return nil, fmt.Errorf("unexpected argument %q: expected %s", posArgs[want], what)
	}
	return posArgs, nil
}
