package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

// ExampleBuildGraph builds a 2×2 street grid with constant weights.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(core.Weight{Distance: 5, Time: 2, Cost: 1}))},
		builder.Grid(2, 2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Keys())
	fmt.Println(g.VertexCount(), g.EdgeCount(), g.OutDegree("R0C0"))
	// Output:
	// [R0C0 R0C1 R1C0 R1C1]
	// 4 8 2
}
