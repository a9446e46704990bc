// Package core_test contains test helpers for lvroute/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only.

package core_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvroute/core"
)

// Common vertex keys used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
var (
	W1 = core.Weight{Distance: 1, Time: 10, Cost: 100}
	W2 = core.Weight{Distance: 2, Time: 20, Cost: 200}
	W5 = core.Weight{Distance: 5, Time: 50, Cost: 500}
)

// NewTriangle RETURNS the A→B(1), B→C(2), A→C(5) fixture with vertices A, B, C.
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, k := range []string{VertexA, VertexB, VertexC} {
		MustTrue(t, g.AddVertex(core.Vertex{Key: k, Name: "Vertex " + k}), "AddVertex("+k+")")
	}
	MustAddEdge(t, g, VertexA, VertexB, W1)
	MustAddEdge(t, g, VertexB, VertexC, W2)
	MustAddEdge(t, g, VertexA, VertexC, W5)

	return g
}

// MustAddEdge FAILS the test if AddEdge reports a no-op.
func MustAddEdge(t *testing.T, g *core.Graph, from, to string, w core.Weight) *core.Edge {
	t.Helper()

	e, ok := g.AddEdge(from, to, w)
	if !ok || e == nil {
		t.Fatalf("AddEdge(%s,%s): unexpected no-op", from, to)
	}

	return e
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		t.Fatalf("%s: want true; got false", op)
	}
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		t.Fatalf("%s: want false; got true", op)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s: got %d; want %d", op, got, want)
	}
}

// MustEqualStrings FAILS the test if the slices differ.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()

	if !slices.Equal(got, want) {
		t.Fatalf("%s: got %v; want %v", op, got, want)
	}
}

// LinkPairs RETURNS "FROM>TO" labels for every link of g in Edges() order.
func LinkPairs(g *core.Graph) []string {
	var out []string
	for l := range g.Edges() {
		out = append(out, l.From.Key+">"+l.To.Key)
	}

	return out
}
