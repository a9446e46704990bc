// Package network is the query facade over a core.Graph: the mutation surface
// used by a host application, the two route queries with demand tracking, and
// the connection/demand statistics.
//
// Queries:
//
//   - ShortestPath runs dijkstra and, when a route is found, increments the
//     demand of every edge on it.
//   - AlternativePaths first asks bfs whether the target is reachable at all;
//     only then does it enumerate simple routes with dfs, bounded by the
//     configured timeout and depth. Every returned route counts as demand.
//
// Statistics:
//
//   - MostDemanded(n), ConnectionStats, MostConnected, LeastConnected, EdgesOf.
//
// Logging goes through an injected *zap.Logger (zap.NewNop by default): one
// Debug entry per query and an Info entry per vertex removal.
//
// A Network is not safe for concurrent use.
package network
