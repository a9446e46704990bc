package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
)

// BenchmarkReachable_Chain measures BFS over a 10,000-vertex chain.
func BenchmarkReachable_Chain(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(10000))
	for i := 0; i < 10000; i++ {
		g.AddVertex(core.Vertex{Key: fmt.Sprintf("N%05d", i)})
	}
	for i := 0; i+1 < 10000; i++ {
		g.AddEdge(fmt.Sprintf("N%05d", i), fmt.Sprintf("N%05d", i+1), core.Weight{Distance: 1})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Reachable(g, "N00000")
	}
}
