// internal/output/stats_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"clstr-core/clstr"
)

func cluster(id, size int) *clstr.Cluster {
	c := &clstr.Cluster{ID: id}
	for i := 0; i < size; i++ {
		c.Members = append(c.Members, clstr.Member{Index: i, SequenceID: "s"})
	}
	return c
}

func TestStatsAccumulation(t *testing.T) {
	var s Stats
	s.Add(cluster(0, 3))
	s.Add(cluster(1, 1))
	require.Equal(t, 2, s.Clusters)
	require.Equal(t, 4, s.Sequences)
	require.InDelta(t, 2.0, s.Mean(), 1e-9)
}

func TestMeanOfEmptyReport(t *testing.T) {
	var s Stats
	require.Equal(t, 0.0, s.Mean())
}

func TestWriteStatsText(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteStatsText(&b, Stats{Clusters: 2, Sequences: 3}))
	require.Equal(t, "clusters   2\nsequences  3\nmean size  1.50\n", b.String())
}

func TestWriteStatsTSV(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteStatsTSV(&b, Stats{Clusters: 2, Sequences: 3}))
	require.Equal(t, "clusters\tsequences\tmean_size\n2\t3\t1.5\n", b.String())
}

func TestWriteStatsJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteStatsJSON(&b, Stats{Clusters: 2, Sequences: 3}))

	var got struct {
		Clusters  int     `json:"clusters"`
		Sequences int     `json:"sequences"`
		MeanSize  float64 `json:"mean_cluster_size"`
	}
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	require.Equal(t, 2, got.Clusters)
	require.Equal(t, 3, got.Sequences)
	require.InDelta(t, 1.5, got.MeanSize, 1e-9)
}

func TestWriteTableRow(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteTableRow(&b, cluster(7, 2)))
	require.Equal(t, "7\t2\n", b.String())
}
