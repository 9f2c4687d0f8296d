// internal/common/sort.go
package common

import (
	"sort"

	"clstr-core/clstr"
)

// LessCluster orders clusters by descending size, ties broken by ascending
// id so top-N selection is deterministic.
func LessCluster(a, b *clstr.Cluster) bool {
	if a.Size() != b.Size() {
		return a.Size() > b.Size()
	}
	return a.ID < b.ID
}

func SortClusters(cs []*clstr.Cluster) {
	sort.Slice(cs, func(i, j int) bool { return LessCluster(cs[i], cs[j]) })
}
