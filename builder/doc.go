// SPDX-License-Identifier: MIT

// Package builder generates deterministic route networks for fixtures,
// benchmarks and demo data.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves the builder configuration and applies constructors in order:
//
//   - Path(n):             a two-way chain 0 ⇄ 1 ⇄ … ⇄ n-1.
//   - Grid(rows, cols):    a two-way street grid with keys "R<r>C<c>".
//   - Star(n):             a hub "HUB" with n-1 two-way spokes.
//   - Complete(n):         every ordered pair of distinct vertices.
//   - RandomSparse(n, p):  each ordered pair kept with probability p.
//
// Determinism:
//
//   - Vertices are added in index order, edges in a documented, stable order.
//   - Weights come from cfg.weightFn(cfg.rng); a fixed seed and option list
//     yields an identical graph, edge IDs included.
//
// Errors:
//
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed). Option constructors panic on meaningless input.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//	    builder.RandomSparse(20, 0.2),
//	)
package builder
