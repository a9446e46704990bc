// Package dfs implements simple-path enumeration on core.Graph.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// pathWalker encapsulates state during one enumeration.
type pathWalker struct {
	graph  *core.Graph
	crit   core.Criterion
	opts   Options
	target string

	onPath   map[string]bool // vertices on the current stack
	vertices []*core.Vertex  // current route, vertices
	edges    []*core.Edge    // current route, edges
	weights  []float64       // weights[i] = cumulative weight after i edges

	found []core.Path
}

// SimplePaths returns every simple route from → to in discovery order.
// On cancellation the routes found so far are returned with the context error.
func SimplePaths(g *core.Graph, from, to string, c core.Criterion, opts ...Option) ([]core.Path, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrBadCriterion, c)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Missing endpoints yield nothing
	src, ok := g.Vertex(from)
	if !ok {
		return []core.Path{}, nil
	}
	dst, ok := g.Vertex(to)
	if !ok {
		return []core.Path{}, nil
	}

	// 4. Walk
	w := &pathWalker{
		graph:    g,
		crit:     c,
		opts:     dopts,
		target:   dst.Key,
		onPath:   make(map[string]bool),
		vertices: []*core.Vertex{src},
		weights:  []float64{0},
		found:    []core.Path{},
	}
	if err := w.walk(src); err != nil && !errors.Is(err, errEnough) {
		return w.found, err
	}

	return w.found, nil
}

// AlternativePaths returns up to k simple routes from → to ordered by
// ascending weight; ties keep discovery order. k ≤ 0 yields an empty slice.
func AlternativePaths(g *core.Graph, from, to string, c core.Criterion, k int, opts ...Option) ([]core.Path, error) {
	paths, err := SimplePaths(g, from, to, c, opts...)
	if paths == nil {
		return nil, err
	}

	return Rank(paths, k), err
}

// walk extends the current route through v, which is already on the stacks.
func (w *pathWalker) walk(v *core.Vertex) error {
	// 1. Cancellation check
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	// 2. Target reached: record; a simple path cannot continue past it
	if v.Key == w.target {
		w.record()
		if w.opts.MaxPaths > 0 && len(w.found) >= w.opts.MaxPaths {
			return errEnough
		}

		return nil
	}

	// 3. Depth limit
	if w.opts.MaxDepth >= 0 && len(w.edges) >= w.opts.MaxDepth {
		return nil
	}

	// 4. Branch over every outgoing edge not closing a cycle
	w.onPath[v.Key] = true
	defer delete(w.onPath, v.Key)

	for e := range w.graph.OutEdges(v.Key) {
		if w.onPath[e.To] {
			continue
		}
		next, ok := w.graph.Vertex(e.To)
		if !ok {
			continue
		}

		w.push(next, e)
		err := w.walk(next)
		w.pop()
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *pathWalker) push(v *core.Vertex, e *core.Edge) {
	w.vertices = append(w.vertices, v)
	w.edges = append(w.edges, e)
	w.weights = append(w.weights, w.weights[len(w.weights)-1]+e.Weight.By(w.crit))
}

func (w *pathWalker) pop() {
	w.vertices = w.vertices[:len(w.vertices)-1]
	w.edges = w.edges[:len(w.edges)-1]
	w.weights = w.weights[:len(w.weights)-1]
}

// record snapshots the current stacks as a Path.
func (w *pathWalker) record() {
	p := core.Path{
		Vertices:  append([]*core.Vertex(nil), w.vertices...),
		Weight:    w.weights[len(w.weights)-1],
		Criterion: w.crit,
	}
	if len(w.edges) > 0 {
		p.Edges = append([]*core.Edge(nil), w.edges...)
	}
	w.found = append(w.found, p)
}
