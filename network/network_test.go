package network_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/network"
)

// newTriangle returns A→B(1), B→C(2), A→C(5) by distance, with an observed logger.
func newTriangle(t *testing.T, opts ...network.Option) (*network.Network, *observer.ObservedLogs) {
	t.Helper()
	obsCore, logs := observer.New(zapcore.DebugLevel)
	n := network.New(append([]network.Option{network.WithLogger(zap.New(obsCore))}, opts...)...)
	for _, k := range []string{"A", "B", "C"} {
		require.True(t, n.AddVertex(k, "Vertex "+k, "G", 0, 0))
	}
	require.True(t, n.AddEdge("A", "B", 1, 10, 10))
	require.True(t, n.AddEdge("B", "C", 2, 10, 10))
	require.True(t, n.AddEdge("A", "C", 5, 10, 10))

	return n, logs
}

func demandOf(n *network.Network) map[string]int64 {
	out := map[string]int64{}
	for l := range n.AllEdges() {
		out[l.From.Key+">"+l.To.Key] += l.Edge.Demand
	}

	return out
}

func TestShortestPath_TracksDemand(t *testing.T) {
	n, logs := newTriangle(t)

	p, err := n.ShortestPath("A", "C", core.Distance)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Keys())
	assert.Equal(t, 3.0, p.Weight)
	assert.Equal(t, map[string]int64{"A>B": 1, "B>C": 1, "A>C": 0}, demandOf(n))

	entries := logs.FilterMessage("shortest path").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].ContextMap()["from"])
	assert.Equal(t, 3.0, entries[0].ContextMap()["weight"])
}

func TestShortestPath_SentinelsDoNotTrackDemand(t *testing.T) {
	n, _ := newTriangle(t)

	p, err := n.ShortestPath("C", "A", core.Distance)
	require.NoError(t, err)
	assert.True(t, math.IsInf(p.Weight, 1))

	p, err = n.ShortestPath("A", "Q", core.Distance)
	require.NoError(t, err)
	assert.True(t, p.Invalid())

	assert.Equal(t, int64(0), n.Stats().TotalDemand)
}

func TestAlternativePaths(t *testing.T) {
	n, _ := newTriangle(t)

	paths, err := n.AlternativePaths(context.Background(), "A", "C", core.Distance, 2)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, []string{"A", "B", "C"}, paths[0].Keys())
	assert.Equal(t, []string{"A", "C"}, paths[1].Keys())
	assert.Equal(t, map[string]int64{"A>B": 1, "B>C": 1, "A>C": 1}, demandOf(n))

	one, err := n.AlternativePaths(context.Background(), "A", "C", core.Distance, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, map[string]int64{"A>B": 2, "B>C": 2, "A>C": 1}, demandOf(n))
}

func TestAlternativePaths_UnreachableShortCircuits(t *testing.T) {
	n, logs := newTriangle(t)

	paths, err := n.AlternativePaths(context.Background(), "C", "A", core.Distance, 3)
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Equal(t, 1, logs.FilterMessage("alternative paths skipped").Len())

	paths, err = n.AlternativePaths(context.Background(), "A", "C", core.Distance, 0)
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Equal(t, int64(0), n.Stats().TotalDemand)
}

func TestAlternativePaths_MaxDepth(t *testing.T) {
	n, _ := newTriangle(t, network.WithMaxDepth(1))

	paths, err := n.AlternativePaths(context.Background(), "A", "C", core.Distance, 5)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"A", "C"}, paths[0].Keys())
}

func TestAlternativePaths_CancelledContext(t *testing.T) {
	n, logs := newTriangle(t, network.WithSearchTimeout(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths, err := n.AlternativePaths(ctx, "A", "C", core.Distance, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, paths)
	assert.Equal(t, int64(0), n.Stats().TotalDemand)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestRemoveVertex_LogsCascade(t *testing.T) {
	n, logs := newTriangle(t)

	require.True(t, n.RemoveVertex("b"))
	assert.False(t, n.RemoveVertex("B"))
	_, ok := n.FindVertex("B")
	assert.False(t, ok)

	entries := logs.FilterMessage("vertex removed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "B", entries[0].ContextMap()["key"])
	assert.Equal(t, int64(2), entries[0].ContextMap()["edges_removed"])
	assert.Equal(t, 1, n.OutDegree("A"))
}

func TestEdgeMaintenance(t *testing.T) {
	n, _ := newTriangle(t)
	_, _ = n.ShortestPath("A", "B", core.Distance)

	assert.False(t, n.AddEdge("A", "Z", 1, 1, 1))
	assert.False(t, n.AddEdge("A", "B", -1, 1, 1))
	assert.False(t, n.RemoveEdge("A", "B", 1, 10, 11))

	old := core.Weight{Distance: 1, Time: 10, Cost: 10}
	require.True(t, n.UpdateEdge("A", "B", old, core.Weight{Distance: 7, Time: 7, Cost: 7}))
	assert.Equal(t, int64(1), demandOf(n)["A>B"])

	require.True(t, n.UpdateVertex("a", "Alpha", "North"))
	v, ok := n.FindVertex("A")
	require.True(t, ok)
	assert.Equal(t, "Alpha", v.Name)

	require.True(t, n.RemoveEdge("A", "B", 7, 7, 7))
	assert.Len(t, n.EdgesOf("A"), 1)
}

func TestConnectionStats(t *testing.T) {
	n, _ := newTriangle(t)
	n.AddVertex("D", "Vertex D", "G", 0, 0)

	stats := n.ConnectionStats()
	require.Len(t, stats, 4)
	keys := make([]string, len(stats))
	degrees := make([]int, len(stats))
	for i, c := range stats {
		keys[i], degrees[i] = c.Vertex.Key, c.OutDegree
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, keys)
	assert.Equal(t, []int{2, 1, 0, 0}, degrees)

	most, ok := n.MostConnected()
	require.True(t, ok)
	assert.Equal(t, "A", most.Vertex.Key)
	least, ok := n.LeastConnected()
	require.True(t, ok)
	assert.Equal(t, "C", least.Vertex.Key)

	_, ok = network.New().MostConnected()
	assert.False(t, ok)
}

func TestMostDemanded(t *testing.T) {
	n, _ := newTriangle(t)
	_, _ = n.ShortestPath("A", "C", core.Distance)
	_, _ = n.ShortestPath("B", "C", core.Distance)

	top := n.MostDemanded(2)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].From.Key)
	assert.Equal(t, int64(2), top[0].Edge.Demand)
	assert.Equal(t, "A", top[1].From.Key)
	assert.Equal(t, "B", top[1].To.Key)

	n.ResetDemand()
	assert.Equal(t, int64(0), n.Stats().TotalDemand)
}

func TestFewestStopsAndReachable(t *testing.T) {
	n, _ := newTriangle(t)

	assert.Equal(t, []string{"A", "C"}, n.FewestStops("a", "c"))
	assert.Nil(t, n.FewestStops("C", "A"))
	assert.Nil(t, n.FewestStops("Q", "A"))

	hops, err := n.Reachable("A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1}, hops)

	g := core.NewGraph()
	wrapped := network.New(network.WithGraph(g))
	assert.Same(t, g, wrapped.Graph())
}
