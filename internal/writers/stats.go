// internal/writers/stats.go
package writers

import (
	"fmt"
	"io"

	"clstr/internal/output"
)

// Stats writer registry (format → handler), filled in init below so new
// formats register in one place.
var statsWriters = map[string]func(io.Writer, output.Stats) error{}

func init() {
	statsWriters["text"] = output.WriteStatsText
	statsWriters["tsv"] = output.WriteStatsTSV
	statsWriters["json"] = output.WriteStatsJSON
}

// StatsFormats reports whether format has a registered writer.
func StatsFormats(format string) bool {
	_, ok := statsWriters[format]
	return ok
}

// WriteStats dispatches to the writer registered for format.
func WriteStats(format string, w io.Writer, s output.Stats) error {
	fn, ok := statsWriters[format]
	if !ok {
		return fmt.Errorf("unknown stats format %q (no writer registered)", format)
	}
	return fn(w, s)
}
