// Package dfs provides helpers shared by the path enumerators.
package dfs

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvroute/core"
)

// Rank stably sorts paths by ascending weight in place and returns the best k.
// k ≤ 0 yields an empty, non-nil slice.
// Time Complexity: O(P log P).
func Rank(paths []core.Path, k int) []core.Path {
	if k <= 0 {
		return []core.Path{}
	}
	slices.SortStableFunc(paths, func(a, b core.Path) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	return paths[:min(k, len(paths))]
}

// Signature returns the route as a comparable string of edge IDs, so two
// routes over parallel edges with the same vertex sequence stay distinct.
// Time Complexity: O(L).
func Signature(p core.Path) string {
	if len(p.Edges) == 0 {
		if len(p.Vertices) == 1 {
			return p.Vertices[0].Key
		}

		return ""
	}
	buf := make([]byte, 0, 4*len(p.Edges))
	for i, e := range p.Edges {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, e.ID...)
	}

	return string(buf)
}
