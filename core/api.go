// File: api.go
// Role: Read-only summaries and whole-graph maintenance.
// Policy:
//   - No algorithms here; search lives in dijkstra/dfs/bfs.

package core

// Stats produces a read-only snapshot of catalog sizes, total demand, the
// largest out-degree and the current index height.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount: g.index.Len(),
		EdgeCount:   g.edgeCount,
		IndexHeight: g.index.Height(),
	}
	for _, list := range g.adjacency {
		stats.MaxOutDegree = max(stats.MaxOutDegree, len(list))
		for _, e := range list {
			stats.TotalDemand += e.Demand
		}
	}

	return &stats
}

// Clear removes every vertex and edge. The edge ID sequence keeps counting so
// IDs stay unique over the graph's lifetime.
// Complexity: O(1) (memory reclaimed by GC).
func (g *Graph) Clear() {
	g.index.Clear()
	g.adjacency = make(map[string][]*Edge)
	g.edgeCount = 0
}
