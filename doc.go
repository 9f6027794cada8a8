// SPDX-License-Identifier: MIT

// Package costflow computes minimum-cost maximum flows on small dense
// networks by successive shortest augmenting paths.
//
// The residual graph is kept as dense n×n int64 matrices (capacity, residual,
// cost). Each augmenting path is the cheapest source→sink path in the
// residual graph, found by Bellman-Ford so the negated costs of reverse arcs
// are handled; flow is pushed along it up to its bottleneck.
//
// Packages:
//
//	matrix        row-major int64 Dense matrix
//	core          Network: capacity, residual and cost matrices, arc views
//	bellmanford   shortest paths with negative-cycle detection
//	flow          MinCostMaxFlow engine, path log, augmentation hook
//	builder       deterministic fixture networks (path, parallel, layered, random)
//	graphio       whitespace integer graph format reader/writer
//	report        text reports, lipgloss tables, JSON/YAML, DOT/SVG
//	cmd/costflow  CLI (solve, paths, generate, render, serve)
//
// Quick example (two routes, the cheaper saturates first):
//
//	    0 ──5,$2──► 1 ──2,$0──► 3
//	    │                       ▲
//	    └──3,$1──► 2 ──3,$0─────┘
//
//	nw, _ := core.FromEdges(4, edges)
//	res, _ := flow.MinCostMaxFlow(ctx, nw, 0)
//	// res.Paths: [0, 2, 3](3) $1, [0, 1, 3](2) $2; TotalFlow 5
//
//	go install github.com/katalvlaran/costflow/cmd/costflow@latest
package costflow
