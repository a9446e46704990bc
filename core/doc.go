// Package core provides the in-memory route graph: an AVL-indexed catalog of
// vertices and an ordered adjacency list of directed, multi-criteria edges.
//
// The Graph G = (V,E) has these properties:
//
//   - Vertices are keyed by a canonical string (NormalizeKey: trimmed, upper-case);
//     at most one vertex per key. The avl.Tree index owns the vertex records.
//   - Edges are directed and carry a Weight of three non-negative dimensions
//     (Distance, Time, Cost) plus a Demand counter.
//   - Parallel edges between the same ordered pair are allowed.
//   - Removing a vertex removes every edge that references it, as source or target.
//
// Error policy:
//
//   - Lookups of absent keys return (nil, false) or an empty result; never panic.
//   - Mutations referencing unknown vertices are no-ops and report false.
//   - Search results use Path sentinels (NoPath, InvalidPath) instead of errors.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v Vertex) bool                     // O(log V)
//	Vertex(key) (*Vertex, bool)                  // O(log V)
//	UpdateVertex(key, name, group) bool          // O(log V)
//	RemoveVertex(key) bool                       // O(log V + E)
//	Vertices() iter.Seq[*Vertex]                 // key order
//
//	// Edge lifecycle
//	AddEdge(from, to, w, opts...) (*Edge, bool)  // O(log V)
//	RemoveEdge(from, to, w) bool                 // O(deg(from))
//	UpdateEdge(from, to, old, w) bool            // O(deg(from))
//	Edges() iter.Seq[Link]                       // source key order, then insertion order
//	OutEdges(key) iter.Seq[*Edge], OutDegree(key) int
//
//	// Demand
//	TrackDemand(paths...) int
//	MostDemanded(n) []Link
//
// A Graph is not safe for concurrent use. Search algorithms keep their scratch
// state outside the graph, so a Graph can be queried repeatedly without reset.
package core
