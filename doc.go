// Package lvroute is an in-memory route network: locations joined by
// directed legs that each carry a distance, a time and a cost.
//
// What it answers:
//
//   - Shortest route between two locations under one criterion (Dijkstra).
//   - The k best alternative routes, ranked (exhaustive simple-path DFS).
//   - Fewest stops and reachability, ignoring weights (BFS).
//   - Which locations are best and worst connected, and which legs carry the
//     most demand; every returned route counts as demand on its legs.
//
// Layout:
//
//	avl/       — generic AVL tree; the ordered vertex catalog
//	core/      — Graph, Vertex, Edge, Weight, Criterion, Path
//	dijkstra/  — single-criterion shortest path
//	dfs/       — simple-path enumeration and ranking
//	bfs/       — hop-count traversal, reachability, connectivity
//	network/   — facade: queries, demand tracking, statistics, logging
//	records/   — VERTEX/EDGE CSV persistence
//	metrics/   — Prometheus collector over a live graph
//	builder/   — deterministic synthetic networks
//	cmd/lvroute — the command-line front end
//
// A Graph is not safe for concurrent use; callers serialise access.
package lvroute
