// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"clstr/internal/output"
)

// Options control the colorized stats rendering.
type Options struct {
	Color bool
}

// DefaultOptions matches plain terminal output.
var DefaultOptions = Options{Color: true}

// RenderStats returns a human-oriented stats block, colorized when enabled.
func RenderStats(s output.Stats, opt Options) string {
	label := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgHiWhite)
	if !opt.Color {
		label.DisableColor()
		value.DisableColor()
	}

	var b strings.Builder
	row := func(name, val string) {
		b.WriteString(label.Sprintf("%-10s", name))
		b.WriteString(value.Sprint(val))
		b.WriteByte('\n')
	}
	row("clusters", fmt.Sprintf("%d", s.Clusters))
	row("sequences", fmt.Sprintf("%d", s.Sequences))
	row("mean size", fmt.Sprintf("%.2f", s.Mean()))
	return b.String()
}
