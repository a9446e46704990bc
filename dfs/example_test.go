package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
)

// ExampleAlternativePaths lists the two cheapest routes on a diamond-shaped network.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
func ExampleAlternativePaths() {
	g := core.NewGraph()
	for _, k := range []string{"A", "B", "C", "D"} {
		g.AddVertex(core.Vertex{Key: k})
	}
	for _, e := range []struct {
		U, V string
		D    float64
	}{
		{"A", "B", 1}, {"A", "C", 2}, {"B", "D", 3}, {"C", "D", 1}, {"A", "D", 10},
	} {
		g.AddEdge(e.U, e.V, core.Weight{Distance: e.D})
	}

	paths, err := dfs.AlternativePaths(g, "A", "D", core.Distance, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Println(p)
	}

	// Output:
	// A -> C -> D (3 distance)
	// A -> B -> D (4 distance)
}
