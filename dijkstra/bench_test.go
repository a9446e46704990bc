package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

func BenchmarkShortestPath_Grid50(b *testing.B) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(50 * 50)},
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 4))},
		builder.Grid(50, 50),
	)
	if err != nil {
		b.Fatal(err)
	}
	from, to := builder.GridKey(0, 0), builder.GridKey(49, 49)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, from, to, core.Distance)
	}
}
