package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
)

// ExampleReachable lists how many hops each airport is from BOG.
func ExampleReachable() {
	g := core.NewGraph()
	for _, k := range []string{"BOG", "LIM", "SCL", "MEX"} {
		g.AddVertex(core.Vertex{Key: k})
	}
	g.AddEdge("BOG", "LIM", core.Weight{Distance: 1880})
	g.AddEdge("LIM", "SCL", core.Weight{Distance: 2460})
	g.AddEdge("MEX", "BOG", core.Weight{Distance: 3160})

	hops, err := bfs.Reachable(g, "BOG")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, k := range g.Keys() {
		if d, ok := hops[k]; ok {
			fmt.Printf("%s %d\n", k, d)
		}
	}
	fmt.Println("BOG reaches MEX:", bfs.Connected(g, "BOG", "MEX"))

	// Output:
	// BOG 0
	// LIM 1
	// SCL 2
	// BOG reaches MEX: false
}
