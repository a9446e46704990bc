// File: types.go
// Role: Data model of the route graph: Criterion, Weight, Vertex, Edge, Link,
//       options, sentinel errors and the NewGraph constructor.
// Policy:
//   - Vertex keys are canonical (NormalizeKey) and are the only comparison basis.
//   - Edges reference endpoints by key; the Graph owns every Vertex and Edge record.

package core

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvroute/avl"
)

// Sentinel errors for core operations.
var (
	// ErrUnknownCriterion indicates a criterion name or value outside Distance/Time/Cost.
	ErrUnknownCriterion = errors.New("core: unknown criterion")
)

// Criterion selects which weight dimension drives a route query.
type Criterion int

const (
	// Distance optimizes the first weight dimension (e.g. kilometres).
	Distance Criterion = iota
	// Time optimizes the second weight dimension (e.g. minutes).
	Time
	// Cost optimizes the third weight dimension (e.g. fare).
	Cost
)

var criterionNames = [...]string{Distance: "distance", Time: "time", Cost: "cost"}

// Criteria returns every supported criterion in declaration order.
func Criteria() []Criterion { return []Criterion{Distance, Time, Cost} }

// Valid reports whether c is one of Distance, Time or Cost.
func (c Criterion) Valid() bool { return c >= Distance && c <= Cost }

// String returns the lower-case criterion name.
func (c Criterion) String() string {
	if !c.Valid() {
		return fmt.Sprintf("criterion(%d)", int(c))
	}

	return criterionNames[c]
}

// ParseCriterion resolves a case-insensitive criterion name.
func ParseCriterion(s string) (Criterion, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range criterionNames {
		if n == name {
			return Criterion(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
}

// Weight is the composite, non-negative cost of traversing an edge.
// Two weights are equal when all three dimensions are equal.
type Weight struct {
	Distance float64
	Time     float64
	Cost     float64
}

// By returns the dimension selected by c. Unknown criteria yield +Inf so that
// they can never win a minimisation.
func (w Weight) By(c Criterion) float64 {
	switch c {
	case Distance:
		return w.Distance
	case Time:
		return w.Time
	case Cost:
		return w.Cost
	}

	return math.Inf(1)
}

// Valid reports whether every dimension is finite and non-negative.
func (w Weight) Valid() bool {
	return validDim(w.Distance) && validDim(w.Time) && validDim(w.Cost)
}

func validDim(x float64) bool { return x >= 0 && !math.IsInf(x, 1) && !math.IsNaN(x) }

// Vertex is a location in the network.
//
// Key is the canonical identifier. X and Y are layout coordinates kept for
// presentation layers; no algorithm reads them.
type Vertex struct {
	Key   string
	Name  string
	Group string
	X, Y  float64
}

// Edge is a directed, weighted link between two vertices.
type Edge struct {
	// ID is "e1", "e2", ... in creation order within one Graph.
	ID string

	// From and To are the canonical endpoint keys.
	From string
	To   string

	Weight Weight

	// Demand counts how many returned routes used this edge.
	Demand int64

	seq uint64
}

// Link pairs an edge with its endpoint records.
type Link struct {
	From *Vertex
	To   *Vertex
	Edge *Edge
}

// NormalizeKey is the default key canonicalisation: surrounding space trimmed,
// letters upper-cased.
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithKeyFunc replaces NormalizeKey as the key canonicaliser. A nil fn is ignored.
//
// fn must be idempotent, fn(fn(k)) == fn(k): stored keys are canonical and the
// search packages pass them back through Vertex and OutEdges. A non-idempotent
// fn (e.g. one that adds a prefix) makes every lookup of a stored key miss.
func WithKeyFunc(fn func(string) string) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.keyFn = fn
		}
	}
}

// WithCapacity pre-sizes the adjacency table for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[string][]*Edge, n)
		}
	}
}

// EdgeOption configures an individual edge when added.
type EdgeOption func(*Edge)

// WithDemand seeds the demand counter, e.g. when restoring persisted state.
// Negative values are clamped to zero.
func WithDemand(n int64) EdgeOption {
	return func(e *Edge) { e.Demand = max(n, 0) }
}

// Graph is the route graph: an AVL-indexed vertex catalog plus one ordered
// adjacency list of outgoing edges per vertex.
//
// Graph is not safe for concurrent use; callers serialise access.
type Graph struct {
	index     *avl.Tree[string, *Vertex] // canonical vertex storage, key order
	adjacency map[string][]*Edge         // key → outgoing edges, insertion order
	keyFn     func(string) string

	nextEdgeID uint64
	edgeCount  int
}

// GraphStats is a read-only snapshot of catalog sizes and demand totals.
type GraphStats struct {
	VertexCount  int
	EdgeCount    int
	TotalDemand  int64
	MaxOutDegree int
	IndexHeight  int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:     avl.New[string, *Vertex](),
		adjacency: make(map[string][]*Edge),
		keyFn:     NormalizeKey,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
