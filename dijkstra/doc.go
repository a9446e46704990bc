// Package dijkstra finds the minimum-weight route between two vertices of a
// core.Graph under one weight dimension (Distance, Time or Cost).
//
// Overview:
//
//   - Vertices move Unvisited → Frontier → Settled. A lazy-deletion min-heap
//     always expands the cheapest frontier vertex; stale heap entries are
//     skipped when popped.
//   - The search stops as soon as the target is settled, so short queries on
//     large graphs touch only the cheap neighbourhood of the source.
//   - Relaxation uses strict "<": among equal-weight routes the first one found
//     (adjacency insertion order) is kept.
//   - Parallel edges are relaxed independently; the predecessor map records the
//     exact edge used so the returned Path names it.
//
// Outcomes:
//
//   - from == to (existing vertex): single-vertex Path, weight 0.
//   - from or to missing: core.InvalidPath, nil error.
//   - target unreachable: core.NoPath, nil error.
//
// Errors are reserved for misuse: ErrNilGraph, ErrBadCriterion.
//
// Options:
//
//   - WithMaxDistance(x): vertices whose tentative weight exceeds x are not expanded.
//   - WithInfEdgeThreshold(t): edges whose selected weight is ≥ t are closed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) per call; nothing is cached on the graph, so repeated
//     queries never need a reset.
//
// Example:
//
//	p, err := dijkstra.ShortestPath(g, "BOG", "SCL", core.Time)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p) // BOG -> LIM -> SCL (405 time)
package dijkstra
