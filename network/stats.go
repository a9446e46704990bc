package network

import "github.com/katalvlaran/lvroute/core"

// Connection is one row of the connection statistics.
type Connection struct {
	Vertex    *core.Vertex
	OutDegree int
}

// ConnectionStats returns every location with its out-degree, in key order.
func (n *Network) ConnectionStats() []Connection {
	out := make([]Connection, 0, n.graph.VertexCount())
	for v := range n.graph.Vertices() {
		out = append(out, Connection{Vertex: v, OutDegree: n.graph.OutDegree(v.Key)})
	}

	return out
}

// MostConnected returns the location with the highest out-degree; ties go to
// the smallest key. ok is false for an empty network.
func (n *Network) MostConnected() (c Connection, ok bool) {
	return n.pick(func(a, b int) bool { return a > b })
}

// LeastConnected returns the location with the lowest out-degree; ties go to
// the smallest key. ok is false for an empty network.
func (n *Network) LeastConnected() (c Connection, ok bool) {
	return n.pick(func(a, b int) bool { return a < b })
}

func (n *Network) pick(better func(a, b int) bool) (Connection, bool) {
	var best Connection
	found := false
	for _, c := range n.ConnectionStats() {
		if !found || better(c.OutDegree, best.OutDegree) {
			best, found = c, true
		}
	}

	return best, found
}

// MostDemanded returns up to k connections ordered by demand descending.
func (n *Network) MostDemanded(k int) []core.Link {
	return n.graph.MostDemanded(k)
}

// EdgesOf returns every connection leaving or entering key.
func (n *Network) EdgesOf(key string) []core.Link {
	return n.graph.EdgesOf(key)
}

// Stats returns catalog sizes and total demand.
func (n *Network) Stats() *core.GraphStats {
	return n.graph.Stats()
}

// ResetDemand zeroes every demand counter.
func (n *Network) ResetDemand() {
	n.graph.ResetDemand()
}
