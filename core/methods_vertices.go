// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() yields records in ascending key order (AVL in-order walk).
//
// Policy:
//   - Invalid mutations are no-ops reported through the bool result.

package core

import "iter"

// Key returns the canonical form of key under this graph's key function.
func (g *Graph) Key(key string) string { return g.keyFn(key) }

// AddVertex inserts v if its canonical key is non-empty and not yet present.
//
// Implementation:
//   - Stage 1: Canonicalise v.Key.
//   - Stage 2: Insert into the index (first write wins).
//   - Stage 3: Allocate an empty adjacency list for the new vertex.
//
// Returns:
//   - bool: true if the vertex was added; false for an empty or duplicate key.
//
// Complexity:
//   - Time O(log V), Space O(1).
func (g *Graph) AddVertex(v Vertex) bool {
	v.Key = g.keyFn(v.Key)
	if v.Key == "" {
		return false
	}
	rec := v
	if !g.index.Insert(v.Key, &rec) {
		return false
	}
	g.adjacency[v.Key] = nil

	return true
}

// Vertex returns the record stored under key.
// Complexity: O(log V).
func (g *Graph) Vertex(key string) (*Vertex, bool) {
	return g.index.Search(g.keyFn(key))
}

// HasVertex reports whether key resolves to a vertex.
func (g *Graph) HasVertex(key string) bool {
	_, ok := g.Vertex(key)

	return ok
}

// UpdateVertex replaces the descriptive fields of an existing vertex.
// The key and coordinates are left untouched.
func (g *Graph) UpdateVertex(key, name, group string) bool {
	v, ok := g.Vertex(key)
	if !ok {
		return false
	}
	v.Name, v.Group = name, group

	return true
}

// MoveVertex sets the layout coordinates of an existing vertex.
func (g *Graph) MoveVertex(key string, x, y float64) bool {
	v, ok := g.Vertex(key)
	if !ok {
		return false
	}
	v.X, v.Y = x, y

	return true
}

// RemoveVertex deletes a vertex, its outgoing adjacency list and every edge in
// the graph that targets it, in one mutation.
//
// Implementation:
//   - Stage 1: Delete from the index (absent key ⇒ no-op).
//   - Stage 2: Drop the vertex's own adjacency list.
//   - Stage 3: Filter every remaining adjacency list, in place, for edges to key.
//
// Complexity:
//   - Time O(log V + E), Space O(1).
func (g *Graph) RemoveVertex(key string) bool {
	key = g.keyFn(key)
	if !g.index.Delete(key) {
		return false
	}
	g.edgeCount -= len(g.adjacency[key])
	delete(g.adjacency, key)

	for from, list := range g.adjacency {
		kept := list[:0]
		for _, e := range list {
			if e.To != key {
				kept = append(kept, e)
			}
		}
		for i := len(kept); i < len(list); i++ {
			list[i] = nil
		}
		g.edgeCount -= len(list) - len(kept)
		g.adjacency[from] = kept
	}

	return true
}

// Vertices yields every vertex in ascending key order. Each call starts a fresh
// traversal; the graph must not be mutated while ranging.
func (g *Graph) Vertices() iter.Seq[*Vertex] {
	return g.index.Values()
}

// Keys returns every vertex key in ascending order.
// Complexity: O(V).
func (g *Graph) Keys() []string {
	out := make([]string, 0, g.index.Len())
	for k := range g.index.Keys() {
		out = append(out, k)
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.index.Len() }

// OutDegree returns the number of outgoing edges of key, or 0 if absent.
// Complexity: O(1) average.
func (g *Graph) OutDegree(key string) int {
	return len(g.adjacency[g.keyFn(key)])
}
