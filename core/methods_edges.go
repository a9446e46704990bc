// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/UpdateEdge, adjacency
//       access, Edges/EdgesOf enumeration, EdgeCount. Also: nextEdgeID().
// Determinism:
//   - Edges() yields by source key asc, then adjacency insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Policy:
//   - Parallel edges between the same ordered pair are kept (no de-duplication).
//   - Unknown endpoints or invalid weights make AddEdge a no-op.

package core

import (
	"iter"
	"slices"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge appends a directed edge from→to to the adjacency list of from.
//
// Steps:
//  1. Canonicalise both keys; both vertices must exist.
//  2. Reject weights with a negative, NaN or infinite dimension.
//  3. Assign the next edge ID, apply opts, append.
//
// Returns the stored edge and true, or nil and false for a no-op.
// Complexity: O(log V) amortized.
func (g *Graph) AddEdge(from, to string, w Weight, opts ...EdgeOption) (*Edge, bool) {
	from, to = g.keyFn(from), g.keyFn(to)
	if !g.index.Contains(from) || !g.index.Contains(to) {
		return nil, false
	}
	if !w.Valid() {
		return nil, false
	}

	e := &Edge{From: from, To: to, Weight: w}
	e.ID, e.seq = nextEdgeID(g)
	for _, opt := range opts {
		opt(e)
	}
	g.adjacency[from] = append(g.adjacency[from], e)
	g.edgeCount++

	return e, true
}

// RemoveEdge removes the first outgoing edge of from that targets to and whose
// weight equals w on all three dimensions. Demand is not compared.
// Complexity: O(deg(from)).
func (g *Graph) RemoveEdge(from, to string, w Weight) bool {
	from, to = g.keyFn(from), g.keyFn(to)
	list := g.adjacency[from]
	i := findEdge(list, to, w)
	if i < 0 {
		return false
	}
	g.adjacency[from] = slices.Delete(list, i, i+1)
	g.edgeCount--

	return true
}

// UpdateEdge replaces the weight of the first edge from→to matching old,
// keeping its ID, demand and position in the adjacency list.
func (g *Graph) UpdateEdge(from, to string, old, w Weight) bool {
	if !w.Valid() {
		return false
	}
	from, to = g.keyFn(from), g.keyFn(to)
	i := findEdge(g.adjacency[from], to, old)
	if i < 0 {
		return false
	}
	g.adjacency[from][i].Weight = w

	return true
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	to = g.keyFn(to)
	for _, e := range g.adjacency[g.keyFn(from)] {
		if e.To == to {
			return true
		}
	}

	return false
}

// OutEdges yields the outgoing edges of key in insertion order without copying.
// The graph must not be mutated while ranging.
func (g *Graph) OutEdges(key string) iter.Seq[*Edge] {
	list := g.adjacency[g.keyFn(key)]

	return func(yield func(*Edge) bool) {
		for _, e := range list {
			if !yield(e) {
				return
			}
		}
	}
}

// Adjacent returns a copy of the outgoing edges of key (nil if absent).
func (g *Graph) Adjacent(key string) []*Edge {
	return slices.Clone(g.adjacency[g.keyFn(key)])
}

// Edges yields every edge with its endpoint records: sources in ascending key
// order, each source's edges in insertion order. Each call starts afresh.
// Complexity: O(V + E·log V) for a full walk.
func (g *Graph) Edges() iter.Seq[Link] {
	return func(yield func(Link) bool) {
		for from := range g.index.Values() {
			for _, e := range g.adjacency[from.Key] {
				to, _ := g.index.Search(e.To)
				if !yield(Link{From: from, To: to, Edge: e}) {
					return
				}
			}
		}
	}
}

// EdgesOf returns every edge whose source or target is key, in Edges() order.
func (g *Graph) EdgesOf(key string) []Link {
	key = g.keyFn(key)
	if !g.index.Contains(key) {
		return nil
	}
	var out []Link
	for l := range g.Edges() {
		if l.Edge.From == key || l.Edge.To == key {
			out = append(out, l)
		}
	}

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// findEdge returns the index of the first edge to `to` with weight w, or -1.
func findEdge(list []*Edge, to string, w Weight) int {
	for i, e := range list {
		if e.To == to && e.Weight == w {
			return i
		}
	}

	return -1
}

// nextEdgeID returns a new textual edge ID and its sequence number.
// Produces "e" + decimal digits without fmt allocations.
func nextEdgeID(g *Graph) (string, uint64) {
	g.nextEdgeID++
	n := g.nextEdgeID
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf), n
}
