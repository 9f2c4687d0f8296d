// internal/output/stats.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"clstr-core/clstr"
)

// Stats accumulates summary figures over a cluster stream.
type Stats struct {
	Clusters  int `json:"clusters"`
	Sequences int `json:"sequences"`
}

// Add folds one cluster into the summary.
func (s *Stats) Add(c *clstr.Cluster) {
	s.Clusters++
	s.Sequences += c.Size()
}

// Mean returns the mean cluster size, 0 for an empty report.
func (s Stats) Mean() float64 {
	if s.Clusters == 0 {
		return 0
	}
	return float64(s.Sequences) / float64(s.Clusters)
}

// WriteStatsText writes a small key/value block.
func WriteStatsText(w io.Writer, s Stats) error {
	_, err := fmt.Fprintf(w, "clusters   %d\nsequences  %d\nmean size  %.2f\n",
		s.Clusters, s.Sequences, s.Mean())
	return err
}

// WriteStatsTSV writes a header line plus one data row.
func WriteStatsTSV(w io.Writer, s Stats) error {
	if _, err := fmt.Fprintln(w, "clusters\tsequences\tmean_size"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d\t%d\t%g\n", s.Clusters, s.Sequences, s.Mean())
	return err
}

// WriteStatsJSON writes the summary as indented JSON.
func WriteStatsJSON(w io.Writer, s Stats) error {
	payload := struct {
		Stats
		MeanSize float64 `json:"mean_cluster_size"`
	}{Stats: s, MeanSize: s.Mean()}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// WriteTableRow emits one "id<TAB>size" row for -table mode.
func WriteTableRow(w io.Writer, c *clstr.Cluster) error {
	_, err := fmt.Fprintf(w, "%d\t%d\n", c.ID, c.Size())
	return err
}
