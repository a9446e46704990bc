// Package bfs provides breadth-first search over a core.Graph, following
// directed edges only, returning hop counts, parent links and visit order.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex
//     and returns a BFSResult (Order, Depth, Parent).
//   - Reachable returns the hop count of every vertex reachable from a start.
//   - Connected answers "is there any directed route from → to?" and stops as
//     soon as the target is dequeued. The network facade uses it to skip an
//     exhaustive path enumeration when the answer is no.
//   - BFSResult.PathTo rebuilds the fewest-stops route to a reached vertex.
//
// Options
//
//   - WithContext(ctx)       cancellation and deadlines.
//   - WithOnVisit(fn)        called per visited vertex; an error aborts.
//   - WithMaxDepth(d)        d > 0 limits hops, d == 0 means no limit, d < 0 is invalid.
//   - WithFilterEdge(fn)     skip edges for which fn returns false.
//
// Determinism
//
//	Vertices are expanded in adjacency insertion order, so the visit
//	sequence is reproducible for a given graph history.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log V) (one index lookup per discovered vertex)
//   - Memory: O(V)
package bfs
