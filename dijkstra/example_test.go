// Package dijkstra_test provides runnable examples for ShortestPath.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// ExampleShortestPath shows how the criterion changes the chosen route.
func ExampleShortestPath() {
	g := core.NewGraph()
	for _, k := range []string{"BOG", "LIM", "SCL"} {
		g.AddVertex(core.Vertex{Key: k})
	}
	g.AddEdge("BOG", "LIM", core.Weight{Distance: 1880, Time: 190, Cost: 210})
	g.AddEdge("LIM", "SCL", core.Weight{Distance: 2460, Time: 215, Cost: 180})
	g.AddEdge("BOG", "SCL", core.Weight{Distance: 4250, Time: 370, Cost: 520})

	for _, c := range core.Criteria() {
		p, err := dijkstra.ShortestPath(g, "bog", "scl", c)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(p)
	}

	none, _ := dijkstra.ShortestPath(g, "SCL", "BOG", core.Distance)
	fmt.Println(none)

	// Output:
	// BOG -> SCL (4250 distance)
	// BOG -> SCL (370 time)
	// BOG -> LIM -> SCL (390 cost)
	// no path
}
