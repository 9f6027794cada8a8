// SPDX-License-Identifier: MIT

// Package bellmanford implements single-source shortest paths by iterative
// edge relaxation over a dense vertex-pair graph, with negative-cycle detection.
//
// Two entry points share one relaxer:
//
//   - Relax(g, s): exactly n-1 passes, no cycle check. The flow engine uses it
//     on residual graphs, whose reverse arcs carry negated costs.
//   - ShortestPaths(g, s): Relax plus one guard pass. Any further improvement
//     means a negative cycle is reachable from s; the call then fails with a
//     NegativeCycleError (errors.Is(err, ErrNegativeCycle)) naming one cycle.
//
// Determinism:
//
//   - The pass count is fixed (no early exit).
//   - Pairs are enumerated u ascending, then v ascending, every pass.
//   - Equal-cost alternatives keep the first predecessor found in that order.
//
// Those three properties make Pred, and therefore the augmenting paths chosen
// by the flow engine, reproducible.
//
// Complexity:
//
//   - Time:  O(n³) for n-1 passes over n² pairs.
//   - Space: O(n) for Dist and Pred.
//
// Example:
//
//	res, err := bellmanford.ShortestPaths(nw.Arcs(), 0)
//	if errors.Is(err, bellmanford.ErrNegativeCycle) {
//	    ...
//	}
//	fmt.Println(res.Dist[3], res.Pred[3])
package bellmanford
