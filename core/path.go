// File: path.go
// Role: Path result type shared by the search packages, with its two sentinels.

package core

import (
	"math"
	"strconv"
	"strings"
)

// InvalidWeight marks a Path produced for an endpoint key that does not
// resolve to a vertex. It is distinct from +Inf, which means "unreachable".
const InvalidWeight = -1.0

// Path is an ordered route between two vertices.
//
// Vertices has len(Edges)+1 entries for a found path. An empty Vertices slice
// is the "no path" sentinel; its Weight is +Inf (unreachable) or InvalidWeight
// (endpoint missing). A single-vertex path with Weight 0 is a real route.
type Path struct {
	Vertices  []*Vertex
	Edges     []*Edge
	Weight    float64
	Criterion Criterion
}

// NoPath returns the sentinel for an unreachable target.
func NoPath(c Criterion) Path {
	return Path{Weight: math.Inf(1), Criterion: c}
}

// InvalidPath returns the sentinel for an unresolved endpoint key.
func InvalidPath(c Criterion) Path {
	return Path{Weight: InvalidWeight, Criterion: c}
}

// Found reports whether p is a real route (at least one vertex).
func (p Path) Found() bool { return len(p.Vertices) > 0 }

// Invalid reports whether p is the unresolved-endpoint sentinel.
func (p Path) Invalid() bool { return !p.Found() && p.Weight == InvalidWeight }

// Len returns the number of edges (hops) in p.
func (p Path) Len() int { return len(p.Edges) }

// Keys returns the vertex keys of p in travel order.
func (p Path) Keys() []string {
	out := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Key
	}

	return out
}

// String renders "A -> B -> C (3 distance)" or "no path".
func (p Path) String() string {
	if !p.Found() {
		return "no path"
	}
	var sb strings.Builder
	sb.WriteString(strings.Join(p.Keys(), " -> "))
	sb.WriteString(" (")
	sb.WriteString(strconv.FormatFloat(p.Weight, 'f', -1, 64))
	sb.WriteByte(' ')
	sb.WriteString(p.Criterion.String())
	sb.WriteByte(')')

	return sb.String()
}
