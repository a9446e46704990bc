package network

import (
	"context"
	"iter"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// Network owns a route graph and answers route queries against it.
type Network struct {
	graph         *core.Graph
	log           *zap.Logger
	searchTimeout time.Duration
	maxDepth      int
}

// New creates a Network with an empty graph unless WithGraph is given.
func New(opts ...Option) *Network {
	n := &Network{
		log:      zap.NewNop(),
		maxDepth: -1,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.graph == nil {
		n.graph = core.NewGraph()
	}

	return n
}

// Graph exposes the underlying graph for persistence and metrics.
func (n *Network) Graph() *core.Graph { return n.graph }

// AddVertex registers a location. Returns false for an empty or taken key.
func (n *Network) AddVertex(key, name, group string, x, y float64) bool {
	return n.graph.AddVertex(core.Vertex{Key: key, Name: name, Group: group, X: x, Y: y})
}

// RemoveVertex deletes a location and every edge touching it.
func (n *Network) RemoveVertex(key string) bool {
	before := n.graph.EdgeCount()
	if !n.graph.RemoveVertex(key) {
		return false
	}
	n.log.Info("vertex removed",
		zap.String("key", n.graph.Key(key)),
		zap.Int("edges_removed", before-n.graph.EdgeCount()),
	)

	return true
}

// FindVertex looks a location up by key.
func (n *Network) FindVertex(key string) (*core.Vertex, bool) {
	return n.graph.Vertex(key)
}

// AllVerticesInKeyOrder yields every location in ascending key order.
func (n *Network) AllVerticesInKeyOrder() iter.Seq[*core.Vertex] {
	return n.graph.Vertices()
}

// UpdateVertex changes the descriptive fields of a location, keeping its edges.
func (n *Network) UpdateVertex(key, name, group string) bool {
	return n.graph.UpdateVertex(key, name, group)
}

// AddEdge adds a directed connection. Returns false for unknown endpoints or
// invalid weights.
func (n *Network) AddEdge(from, to string, distance, duration, cost float64) bool {
	_, ok := n.graph.AddEdge(from, to, core.Weight{Distance: distance, Time: duration, Cost: cost})

	return ok
}

// RemoveEdge removes the first from→to edge whose three weights match exactly.
func (n *Network) RemoveEdge(from, to string, distance, duration, cost float64) bool {
	return n.graph.RemoveEdge(from, to, core.Weight{Distance: distance, Time: duration, Cost: cost})
}

// UpdateEdge replaces the weights of the first from→to edge matching old,
// keeping its demand.
func (n *Network) UpdateEdge(from, to string, old, w core.Weight) bool {
	return n.graph.UpdateEdge(from, to, old, w)
}

// AllEdges yields every connection: source keys ascending, then insertion order.
func (n *Network) AllEdges() iter.Seq[core.Link] {
	return n.graph.Edges()
}

// OutDegree returns the number of outgoing connections of key.
func (n *Network) OutDegree(key string) int {
	return n.graph.OutDegree(key)
}

// ShortestPath returns the cheapest route under c and records demand on it.
// Missing endpoints yield core.InvalidPath and unreachable targets core.NoPath;
// neither is an error and neither changes demand.
func (n *Network) ShortestPath(from, to string, c core.Criterion) (core.Path, error) {
	p, err := dijkstra.ShortestPath(n.graph, from, to, c)
	if err != nil {
		return p, err
	}
	n.graph.TrackDemand(p)
	n.log.Debug("shortest path",
		zap.String("from", from),
		zap.String("to", to),
		zap.Stringer("criterion", c),
		zap.Bool("found", p.Found()),
		zap.Float64("weight", p.Weight),
		zap.Int("hops", p.Len()),
	)

	return p, nil
}

// AlternativePaths returns up to k simple routes ordered by weight under c and
// records demand on every one of them.
//
// The target's reachability is checked first so an unreachable query never
// pays for exhaustive enumeration. The configured timeout and depth bound
// the walk; on timeout the context error is returned and demand is untouched.
func (n *Network) AlternativePaths(ctx context.Context, from, to string, c core.Criterion, k int) ([]core.Path, error) {
	if k <= 0 || !bfs.Connected(n.graph, from, to) {
		n.log.Debug("alternative paths skipped",
			zap.String("from", from),
			zap.String("to", to),
			zap.Int("k", k),
		)

		return []core.Path{}, nil
	}

	if n.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.searchTimeout)
		defer cancel()
	}

	paths, err := dfs.AlternativePaths(n.graph, from, to, c, k,
		dfs.WithContext(ctx),
		dfs.WithMaxDepth(n.maxDepth),
	)
	if err != nil {
		n.log.Warn("alternative paths aborted",
			zap.String("from", from),
			zap.String("to", to),
			zap.Int("partial", len(paths)),
			zap.Error(err),
		)

		return nil, err
	}
	n.graph.TrackDemand(paths...)

	fields := []zap.Field{
		zap.String("from", from),
		zap.String("to", to),
		zap.Stringer("criterion", c),
		zap.Int("k", k),
		zap.Int("returned", len(paths)),
	}
	if len(paths) > 0 {
		fields = append(fields, zap.Float64("best", paths[0].Weight), zap.String("best_edges", dfs.Signature(paths[0])))
	}
	n.log.Debug("alternative paths", fields...)

	return paths, nil
}

// FewestStops returns the vertex keys of a route from → to with the fewest
// hops, or nil if there is none. Demand is not tracked.
func (n *Network) FewestStops(from, to string) []string {
	res, err := bfs.BFS(n.graph, from)
	if err != nil {
		return nil
	}
	keys, err := res.PathTo(n.graph.Key(to))
	if err != nil {
		return nil
	}

	return keys
}

// Reachable returns the hop count of every location reachable from key.
func (n *Network) Reachable(key string) (map[string]int, error) {
	return bfs.Reachable(n.graph, key)
}
