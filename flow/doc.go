// SPDX-License-Identifier: MIT

// Package flow computes minimum-cost maximum flows on a *core.Network by the
// Successive Shortest augmenting Path (SSP) method.
//
// # Algorithm
//
// Each iteration runs Bellman-Ford (package bellmanford) over the current
// residual graph, where reverse arcs carry negated cost, and augments along
// the cheapest source→sink path found:
//
//	Init → loop { Search → sink unreachable? Done : Augment }
//
//   - Search:  n-1 dense relaxation passes, pairs u ascending then v ascending.
//   - Augment: bottleneck = min residual on the path; residual[u][v] -= b and
//     residual[v][u] += b on every arc; the record (path, b, Σcost) is logged.
//
//   - Time:   O(n³) per iteration, iterations bounded by the augmenting paths.
//   - Memory: O(n²) for the cloned residual store.
//
// # Cost accounting
//
// Result.TotalCost is Σ path cost over augmentations, one term per path,
// without multiplying by the units pushed. Result.ScaledCost is
// Σ path cost · bottleneck, the actual cost of every unit of flow. Both are
// reported; they coincide when every bottleneck is 1.
//
// # API
//
//	res, err := flow.MinCostMaxFlow(ctx, nw, 0,
//	    flow.WithSink(3),          // default: n-1
//	    flow.WithLogger(logger),   // *charmlog.Logger, debug line per augmentation
//	    flow.WithCycleCheck(),     // run the negative-cycle guard every search
//	    flow.WithOnAugment(hook),  // observe each intermediate Step
//	)
//
// # Errors
//
//	ErrNilNetwork, ErrSourceOutOfRange, ErrSinkOutOfRange, ErrSourceIsSink
//	bellmanford.ErrNegativeCycle  - residual graph holds a negative cycle
//	ErrBrokenPath                 - corrupt predecessor chain (never on valid input)
//	context.Canceled / DeadlineExceeded - checked between iterations
//
// # Determinism
//
// A solve works on a private Clone of the network. Identical network, source
// and sink always yield the identical path log.
package flow
