// SPDX-License-Identifier: MIT

// Package core provides Network, the dense residual graph store of a
// min-cost max-flow solve.
//
// A Network over n vertices (identified by position in [0, n)) holds:
//
//   - capacity[u][v]: the original capacity of edge u→v (0 = no edge)
//   - residual[u][v]: capacity still available on u→v
//   - cost[u][v]:     per-unit cost of u→v; the reverse arc v→u carries -cost
//
// Every ordered pair has an implicit entry; absent pairs are zero. Storage is
// three n×n matrix.Dense buffers, so memory and per-pass relaxation time are
// both O(n²).
//
// Construction (graph constructor interface):
//
//	nw, err := core.FromEdges(4, []core.Edge{
//	    {From: 0, To: 1, Capacity: 5, Cost: 2},
//	    {From: 1, To: 3, Capacity: 2, Cost: 0},
//	})
//
// Endpoint policy: tuples referencing a vertex outside [0, n) are rejected
// with ErrInvalidEdgeEndpoint by default, or skipped (and counted) under
// WithSkipInvalidEdges().
//
// Mutation happens only through Push (forward residual down, reverse residual
// up, by the same amount) and Reset. ResidualArcs and Arcs expose the
// network as a cost graph for shortest-path relaxation.
//
// Concurrency: a Network is single-owner. Solvers Clone it and mutate the
// clone; concurrent use of one instance is not supported.
package core
