// internal/common/sort_test.go
package common

import (
	"testing"

	"github.com/stretchr/testify/require"

	"clstr-core/clstr"
)

func cluster(id, size int) *clstr.Cluster {
	c := &clstr.Cluster{ID: id}
	for i := 0; i < size; i++ {
		c.Members = append(c.Members, clstr.Member{Index: i})
	}
	return c
}

func TestSortClustersBySizeDescending(t *testing.T) {
	cs := []*clstr.Cluster{cluster(0, 1), cluster(1, 5), cluster(2, 3)}
	SortClusters(cs)
	require.Equal(t, []int{1, 2, 0}, []int{cs[0].ID, cs[1].ID, cs[2].ID})
}

func TestSortClustersTieBreaksByID(t *testing.T) {
	cs := []*clstr.Cluster{cluster(9, 2), cluster(3, 2), cluster(5, 2)}
	SortClusters(cs)
	require.Equal(t, []int{3, 5, 9}, []int{cs[0].ID, cs[1].ID, cs[2].ID})
}
