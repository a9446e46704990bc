// File: methods_demand.go
// Role: Demand tracking: usage counters on edges of returned routes.
// Policy:
//   - Demand never feeds back into search weights.

package core

import (
	"cmp"
	"slices"
)

// TrackDemand increments the demand counter of every edge of every found path
// by one and returns the number of increments applied. Not-found sentinels are
// skipped.
//
// Complexity: O(total path length).
func (g *Graph) TrackDemand(paths ...Path) int {
	n := 0
	for _, p := range paths {
		if !p.Found() {
			continue
		}
		for _, e := range p.Edges {
			e.Demand++
			n++
		}
	}

	return n
}

// ResetDemand zeroes every demand counter.
func (g *Graph) ResetDemand() {
	for _, list := range g.adjacency {
		for _, e := range list {
			e.Demand = 0
		}
	}
}

// MostDemanded returns up to n links ordered by demand descending; ties keep
// creation order. n ≤ 0 yields nil.
//
// Complexity: O(E log E).
func (g *Graph) MostDemanded(n int) []Link {
	if n <= 0 {
		return nil
	}
	links := make([]Link, 0, g.edgeCount)
	for l := range g.Edges() {
		links = append(links, l)
	}
	slices.SortFunc(links, func(a, b Link) int {
		if c := cmp.Compare(b.Edge.Demand, a.Edge.Demand); c != 0 {
			return c
		}

		return cmp.Compare(a.Edge.seq, b.Edge.seq)
	})

	return links[:min(n, len(links))]
}
