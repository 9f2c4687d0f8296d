// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func newSet() *flag.FlagSet {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Bool("all", false, "")
	fs.String("output", "-", "")
	fs.Int("n", 0, "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := newSet()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"--all", "-o", "out.clstr", "in.clstr"})
	require.Equal(t, []string{"--all", "-o", "out.clstr"}, flags)
	require.Equal(t, []string{"in.clstr"}, pos)
}

func TestSplitKeepsStdinDash(t *testing.T) {
	fs := newSet()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"-n", "5", "-"})
	require.Equal(t, []string{"-n", "5"}, flags)
	require.Equal(t, []string{"-"}, pos)
}

func TestSplitDoubleDashTerminator(t *testing.T) {
	fs := newSet()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"--all", "--", "--not-a-flag"})
	require.Equal(t, []string{"--all"}, flags)
	require.Equal(t, []string{"--not-a-flag"}, pos)
}

func TestSplitEqualsForm(t *testing.T) {
	fs := newSet()
	flags, pos := SplitFlagsAndPositionals(fs, []string{"--output=x.gz", "in.clstr"})
	require.Equal(t, []string{"--output=x.gz"}, flags)
	require.Equal(t, []string{"in.clstr"}, pos)
}

func TestPositionals(t *testing.T) {
	got, err := Positionals([]string{"a", "b"}, 2, "<FILE> <DATABASE>")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)

	_, err = Positionals(nil, 1, "<FILE>")
	require.ErrorContains(t, err, "missing argument")
	require.ErrorContains(t, err, "<FILE>")

	_, err = Positionals([]string{"a", "b"}, 1, "<FILE>")
	require.ErrorContains(t, err, `unexpected argument "b"`)
}
