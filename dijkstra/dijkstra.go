// Package dijkstra implements single-pair shortest routes on a core.Graph.
package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvroute/core"
)

// ShortestPath computes the minimum-weight route from → to under criterion c.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. c must be a known criterion (ErrBadCriterion).
//  3. Missing endpoints are not errors: core.InvalidPath is returned.
//
// Returns a Path whose Edges are the exact edges traversed, core.NoPath if to
// cannot be reached, or a single-vertex Path of weight 0 when from == to.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, from, to string, c core.Criterion, opts ...Option) (core.Path, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return core.InvalidPath(c), ErrNilGraph
	}
	if !c.Valid() {
		return core.InvalidPath(c), fmt.Errorf("%w: %v", ErrBadCriterion, c)
	}

	src, ok := g.Vertex(from)
	if !ok {
		return core.InvalidPath(c), nil
	}
	dst, ok := g.Vertex(to)
	if !ok {
		return core.InvalidPath(c), nil
	}
	if src.Key == dst.Key {
		return core.Path{Vertices: []*core.Vertex{src}, Criterion: c}, nil
	}

	// 3) Run the search with per-call scratch state.
	r := &runner{
		g:        g,
		crit:     c,
		options:  cfg,
		target:   dst.Key,
		dist:     make(map[string]float64),
		prev:     make(map[string]*core.Edge),
		settled:  make(map[string]bool),
		frontier: make(nodePQ, 0, 16),
	}
	r.init(src.Key)
	r.process()

	// 4) Reconstruct.
	if !r.settled[dst.Key] {
		return core.NoPath(c), nil
	}

	return r.path(src, dst), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *core.Graph
	crit     core.Criterion
	options  Options
	target   string
	dist     map[string]float64    // best known weight; absent ⇒ +Inf
	prev     map[string]*core.Edge // edge used to reach the vertex
	settled  map[string]bool       // weight final
	frontier nodePQ
}

// init seeds the heap with the source at weight 0.
func (r *runner) init(source string) {
	r.dist[source] = 0
	heap.Init(&r.frontier)
	heap.Push(&r.frontier, &nodeItem{id: source, dist: 0})
}

// process pops the cheapest frontier vertex until the target is settled, the
// frontier drains, or the cheapest entry exceeds MaxDistance.
func (r *runner) process() {
	for r.frontier.Len() > 0 {
		item := heap.Pop(&r.frontier).(*nodeItem)
		u := item.id

		// Stale entry: a cheaper copy was settled earlier.
		if r.settled[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[u] = true
		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax tries to improve every out-neighbour of the settled vertex u.
func (r *runner) relax(u string) {
	du := r.dist[u]
	for e := range r.g.OutEdges(u) {
		if r.settled[e.To] {
			continue
		}
		w := e.Weight.By(r.crit)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.dist[e.To]; seen && nd >= cur {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = e
		heap.Push(&r.frontier, &nodeItem{id: e.To, dist: nd})
	}
}

// path walks predecessor edges back from dst and reverses them.
func (r *runner) path(src, dst *core.Vertex) core.Path {
	var edges []*core.Edge
	vertices := []*core.Vertex{dst}
	for at := dst.Key; at != src.Key; {
		e := r.prev[at]
		edges = append(edges, e)
		v, _ := r.g.Vertex(e.From)
		vertices = append(vertices, v)
		at = e.From
	}
	slices.Reverse(edges)
	slices.Reverse(vertices)

	return core.Path{
		Vertices:  vertices,
		Edges:     edges,
		Weight:    r.dist[dst.Key],
		Criterion: r.crit,
	}
}

// nodeItem is a (vertex, tentative weight) heap entry.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Decrease-key is lazy:
// improved weights push a new entry and outdated ones are skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x (a *nodeItem) to the heap; called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

