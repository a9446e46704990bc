// Package builder_test verifies topology, counts, determinism and error
// reporting of every Constructor.
package builder_test

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

// edgeWeights maps each ordered pair to the weight of its first edge.
func edgeWeights(g *core.Graph) map[edgeKey]core.Weight {
	m := make(map[edgeKey]core.Weight)
	for l := range g.Edges() {
		k := edgeKey{l.Edge.From, l.Edge.To}
		if _, seen := m[k]; !seen {
			m[k] = l.Edge.Weight
		}
	}

	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for _, k := range []edgeKey{{"0", "1"}, {"1", "0"}, {"2", "3"}, {"3", "2"}} {
					if w, ok := edges[k]; !ok || w != builder.DefaultEdgeWeight {
						t.Errorf("Path: missing or wrong weight for %s→%s", k.U, k.V)
					}
				}
				if g.HasEdge("0", "2") {
					t.Error("Path: unexpected edge 0→2")
				}
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 14,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, k := range []edgeKey{{"R0C0", "R0C1"}, {"R0C1", "R0C0"}, {"R0C2", "R1C2"}, {"R1C1", "R0C1"}} {
					if !g.HasEdge(k.U, k.V) {
						t.Errorf("Grid: missing %s→%s", k.U, k.V)
					}
				}
				if g.HasEdge("R0C0", "R1C1") {
					t.Error("Grid: unexpected diagonal R0C0→R1C1")
				}
				v, ok := g.Vertex("R1C2")
				if !ok || v.X != 2 || v.Y != 1 {
					t.Errorf("Grid: R1C2 coordinates = %+v, ok=%v", v, ok)
				}
			},
		},
		{
			name:  "Star(5)",
			ctor:  builder.Star(5),
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if got := g.OutDegree(builder.HubKey); got != 4 {
					t.Errorf("Star: hub out-degree = %d, want 4", got)
				}
				for _, leaf := range []string{"0", "1", "2", "3"} {
					if g.OutDegree(leaf) != 1 || !g.HasEdge(leaf, builder.HubKey) {
						t.Errorf("Star: leaf %s must have exactly one edge back to the hub", leaf)
					}
				}
				hub, _ := g.Vertex(builder.HubKey)
				if hub.Group != "hub" {
					t.Errorf("Star: hub group = %q", hub.Group)
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, k := range g.Keys() {
					if g.OutDegree(k) != 3 || g.HasEdge(k, k) {
						t.Errorf("Complete: vertex %s has out-degree %d or a self-loop", k, g.OutDegree(k))
					}
				}
			},
		},
		{
			name:  "RandomSparse(5,1)",
			ctor:  builder.RandomSparse(5, 1),
			wantV: 5, wantE: 20,
		},
		{
			name:  "RandomSparse(5,0)",
			ctor:  builder.RandomSparse(5, 0),
			wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("vertices = %d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edges = %d, want %d", got, tc.wantE)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cons []builder.Constructor
		want error
	}{
		{"Path too short", []builder.Constructor{builder.Path(1)}, builder.ErrTooFewVertices},
		{"Grid zero rows", []builder.Constructor{builder.Grid(0, 3)}, builder.ErrTooFewVertices},
		{"Star too small", []builder.Constructor{builder.Star(1)}, builder.ErrTooFewVertices},
		{"Complete empty", []builder.Constructor{builder.Complete(0)}, builder.ErrTooFewVertices},
		{"probability above one", []builder.Constructor{builder.RandomSparse(3, 1.5)}, builder.ErrInvalidProbability},
		{"probability negative", []builder.Constructor{builder.RandomSparse(3, -0.1)}, builder.ErrInvalidProbability},
		{"no rng", []builder.Constructor{builder.RandomSparse(3, 0.5)}, builder.ErrNeedRandSource},
		{"key collision", []builder.Constructor{builder.Path(3), builder.Complete(2)}, builder.ErrConstructFailed},
		{"nil constructor", []builder.Constructor{nil}, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		g, err := builder.BuildGraph(nil, nil, tc.cons...)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
		if g != nil {
			t.Errorf("%s: expected nil graph on error", tc.name)
		}
	}
}

// signature lists every edge as "id:from>to:weight" in Edges() order.
func signature(g *core.Graph) []string {
	var out []string
	for l := range g.Edges() {
		out = append(out, fmt.Sprintf("%s:%s>%s:%v", l.Edge.ID, l.Edge.From, l.Edge.To, l.Edge.Weight))
	}

	return out
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 50))},
			builder.RandomSparse(12, 0.3),
		)
		if err != nil {
			t.Fatalf("BuildGraph: %v", err)
		}

		return g
	}

	a, b := build(42), build(42)
	if a.EdgeCount() != b.EdgeCount() {
		t.Fatalf("edge counts differ: %d vs %d", a.EdgeCount(), b.EdgeCount())
	}
	wa, wb := edgeWeights(a), edgeWeights(b)
	for k, w := range wa {
		if wb[k] != w {
			t.Errorf("edge %s→%s: weight %+v vs %+v", k.U, k.V, w, wb[k])
		}
	}
	if !slices.Equal(signature(a), signature(b)) {
		t.Error("edge order differs for the same seed")
	}
	for l := range a.Edges() {
		if l.Edge.From == l.Edge.To {
			t.Errorf("self-loop on %s", l.Edge.From)
		}
	}
}

func TestOptions_IDSchemeAndApply(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.AddVertex(core.Vertex{Key: "HQ"})
	err := builder.Apply(g,
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("city")), builder.WithRand(rand.New(rand.NewSource(1)))},
		builder.Path(3),
	)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []string{"CITY0", "CITY1", "CITY2", "HQ"}
	if got := g.Keys(); !slices.Equal(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
	if err := builder.Apply(nil, nil, builder.Path(2)); !errors.Is(err, builder.ErrConstructFailed) {
		t.Errorf("Apply(nil): err = %v", err)
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme":      func() { builder.WithIDScheme(nil) },
		"WithRand":          func() { builder.WithRand(nil) },
		"WithWeightFn":      func() { builder.WithWeightFn(nil) },
		"ConstantWeightFn":  func() { builder.ConstantWeightFn(core.Weight{Distance: -1}) },
		"UniformWeightFn":   func() { builder.UniformWeightFn(5, 1) },
		"RoundedWeightFn":   func() { builder.RoundedWeightFn(nil) },
		"ExcelColumnIDFn-1": func() { builder.ExcelColumnIDFn(-1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
