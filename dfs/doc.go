// Package dfs enumerates simple directed routes between two vertices of a
// core.Graph by depth-first search with backtracking.
//
// What:
//
//   - SimplePaths: every route from → to that never repeats a vertex, in
//     discovery order (adjacency insertion order at each step).
//   - AlternativePaths: the same set, stably sorted by weight under the chosen
//     criterion and truncated to the best K. Equal-weight routes keep their
//     discovery order.
//
// Semantics:
//
//   - Every outgoing edge is a separate branch, so parallel edges yield
//     distinct routes that share the same vertex sequence.
//   - from == to yields the single-vertex route of weight 0.
//   - A missing endpoint yields an empty result and a nil error.
//   - The number of simple paths can grow exponentially with graph size;
//     the search is unbounded unless the caller sets a limit.
//
// Options:
//
//   - WithContext(ctx)   cancellation; the walk stops and ctx.Err() is returned
//     together with the routes found so far.
//   - WithMaxDepth(n)    maximum edges per route (n < 0: unlimited).
//   - WithMaxPaths(n)    stop after n complete routes (n ≤ 0: unlimited).
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrBadCriterion    if the criterion is not Distance, Time or Cost.
//   - context.Canceled / context.DeadlineExceeded from the context.
//
// Complexity:
//
//   - Time:   O(P · L) for P routes of average length L, plus pruned branches.
//   - Memory: O(V) for the recursion stack and on-path set, plus the output.
package dfs
