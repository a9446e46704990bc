// Package bfs provides breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvroute/core"
)

// errTargetFound stops the walk early inside Connected.
var errTargetFound = errors.New("bfs: target found")

// queueItem pairs a vertex key with its BFS depth.
type queueItem struct {
	key   string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any number
// of functional Options. Keys are canonicalised by the graph.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for invalid
// input, the context error on cancellation, or any OnVisit error. On error
// the partial result is returned alongside.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	v, ok := g.Vertex(start)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(v.Key, 0, "")

	return w.res, w.loop()
}

// Reachable returns the hop count of every vertex reachable from start,
// start itself included at 0.
func Reachable(g *core.Graph, start string, opts ...Option) (map[string]int, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// Connected reports whether a directed route from → to exists. Missing
// endpoints and a nil graph yield false. from == to is connected.
func Connected(g *core.Graph, from, to string, opts ...Option) bool {
	if g == nil {
		return false
	}
	dst, ok := g.Vertex(to)
	if !ok {
		return false
	}
	stop := WithOnVisit(func(key string, _ int) error {
		if key == dst.Key {
			return errTargetFound
		}
		return nil
	})
	_, err := BFS(g, from, append(slices.Clip(opts), stop)...)

	return errors.Is(err, errTargetFound)
}

// enqueue marks key visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(key string, d int, parent string) {
	w.visited[key] = true
	w.res.Depth[key] = d
	if parent != "" {
		w.res.Parent[key] = parent
	}
	w.queue = append(w.queue, queueItem{key: key, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.key)
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
	}

	return nil
}

// enqueueNeighbors follows outgoing edges, applies filtering and MaxDepth,
// and enqueues each unseen target.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for e := range w.graph.OutEdges(item.key) {
		if !w.opts.FilterEdge(e) {
			continue
		}
		if !w.visited[e.To] {
			w.enqueue(e.To, nextDepth, item.key)
		}
	}
}
