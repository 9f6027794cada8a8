// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/costflow/matrix"
)

// ErrSelfLoop indicates an edge whose endpoints coincide. A self-loop would
// store cost and negated cost in the same cell, so it is rejected.
var ErrSelfLoop = fmt.Errorf("core: %w", errSelfLoop)
var errSelfLoop = fmt.Errorf("self-loop not allowed")

// ErrInsufficientResidual indicates a Push larger than the remaining residual capacity.
var ErrInsufficientResidual = fmt.Errorf("core: %w", errInsufficientResidual)
var errInsufficientResidual = fmt.Errorf("push exceeds residual capacity")

// Network is the residual graph store. For every ordered pair (u, v):
//
//	capacity[u][v] - original capacity (0 when no edge)
//	residual[u][v] - remaining capacity; starts equal to capacity
//	cost[u][v]     - residual arc cost; cost[v][u] == -cost[u][v] for declared edges
//	declared[u][v] - the cost u→v was declared with (set only for declared pairs)
//
// cost is what the engine relaxes over residual arcs. Antiparallel edges
// (u→v and v→u both declared) share its two cells and the later declaration
// wins; declared keeps each edge's own cost for Arcs and Edges.
//
// Invariant maintained by Push:
//
//	residual[u][v] + residual[v][u] == capacity[u][v] + capacity[v][u]
//
// A Network is single-owner: it is not safe for concurrent use, and every
// solve works on its own Clone.
type Network struct {
	n        int
	cfg      networkConfig
	capacity *matrix.Dense
	residual *matrix.Dense
	cost     *matrix.Dense
	declared *matrix.Dense
	present  []bool // present[u*n+v]: (u,v) was declared through AddEdge
	skipped  int    // tuples dropped under WithSkipInvalidEdges

	// Row views sharing storage with the matrices above; they keep the
	// relaxation loops free of per-cell error returns.
	capRows  [][]int64
	resRows  [][]int64
	costRows [][]int64
	declRows [][]int64
}

// NewNetwork allocates an empty n-vertex network (all pairs zero).
//
// Errors:
//   - ErrBadVertexCount if n <= 0.
//
// Complexity: O(n²) time and memory.
func NewNetwork(n int, opts ...Option) (*Network, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewNetwork(%d): %w", n, ErrBadVertexCount)
	}
	var cfg networkConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	capacity, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	nw := &Network{
		n:        n,
		cfg:      cfg,
		capacity: capacity,
		residual: capacity.Clone(),
		cost:     capacity.Clone(),
		declared: capacity.Clone(),
		present:  make([]bool, n*n),
	}
	if err = nw.bindRows(); err != nil {
		return nil, err
	}

	return nw, nil
}

// FromEdges builds an n-vertex network from a sequence of edge tuples, in
// order. It is the graph constructor interface: after it returns,
// capacity[u][v] == residual[u][v] == e.Capacity, cost[u][v] == e.Cost and
// cost[v][u] == -e.Cost for every accepted tuple. A later tuple for the same
// ordered pair overwrites the earlier one. Antiparallel edges (u→v and v→u
// both declared) share their residual cost cells, where the later declaration
// wins; Arcs and Edges still report each edge's declared cost.
func FromEdges(n int, edges []Edge, opts ...Option) (*Network, error) {
	nw, err := NewNetwork(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = nw.AddEdge(e); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
	}

	return nw, nil
}

// bindRows refreshes the cached row views after (re)allocation.
func (nw *Network) bindRows() error {
	nw.capRows = make([][]int64, nw.n)
	nw.resRows = make([][]int64, nw.n)
	nw.costRows = make([][]int64, nw.n)
	nw.declRows = make([][]int64, nw.n)
	for i := 0; i < nw.n; i++ {
		var err error
		if nw.capRows[i], err = nw.capacity.Row(i); err != nil {
			return err
		}
		if nw.resRows[i], err = nw.residual.Row(i); err != nil {
			return err
		}
		if nw.costRows[i], err = nw.cost.Row(i); err != nil {
			return err
		}
		if nw.declRows[i], err = nw.declared.Row(i); err != nil {
			return err
		}
	}

	return nil
}

// AddEdge declares the edge e.From→e.To and its implicit reverse arc.
//
// Validation order: endpoints (ErrInvalidEdgeEndpoint), self-loop
// (ErrSelfLoop), capacity sign (ErrNegativeCapacity), cost magnitude
// (ErrCostOutOfRange, see CostLimit). The first two are skipped silently
// when the network was built with WithSkipInvalidEdges. Rejections are
// EdgeError values.
func (nw *Network) AddEdge(e Edge) error {
	if !nw.valid(e.From) || !nw.valid(e.To) {
		return nw.reject(e, ErrInvalidEdgeEndpoint)
	}
	if e.From == e.To {
		return nw.reject(e, ErrSelfLoop)
	}
	if e.Capacity < 0 {
		return EdgeError{Edge: e, VertexCount: nw.n, Err: ErrNegativeCapacity}
	}
	if limit := CostLimit(nw.n); e.Cost > limit || e.Cost < -limit {
		return EdgeError{Edge: e, VertexCount: nw.n, Err: ErrCostOutOfRange}
	}

	u, v := e.From, e.To
	nw.capRows[u][v] = e.Capacity
	nw.resRows[u][v] = e.Capacity
	nw.costRows[u][v] = e.Cost
	nw.costRows[v][u] = -e.Cost
	nw.declRows[u][v] = e.Cost
	nw.present[u*nw.n+v] = true

	return nil
}

// CostLimit is the largest |cost| an n-vertex network accepts: any simple
// path (at most n-1 arcs) then sums strictly inside (-MaxInt64, MaxInt64),
// so no distance wraps or reaches the unreachable sentinel.
func CostLimit(n int) int64 {
	hops := int64(n - 1)
	if hops < 1 {
		hops = 1
	}

	return (math.MaxInt64 - 1) / hops
}

// reject applies the skip policy to a structurally invalid tuple.
func (nw *Network) reject(e Edge, sentinel error) error {
	if nw.cfg.skipInvalid {
		nw.skipped++
		return nil
	}

	return EdgeError{Edge: e, VertexCount: nw.n, Err: sentinel}
}

// valid reports whether v is in [0, n).
func (nw *Network) valid(v int) bool { return v >= 0 && v < nw.n }

// check validates a vertex pair for accessors.
func (nw *Network) check(u, v int) error {
	if !nw.valid(u) || !nw.valid(v) {
		return fmt.Errorf("pair (%d,%d) in %d-vertex network: %w", u, v, nw.n, ErrVertexOutOfRange)
	}

	return nil
}

// VertexCount returns n.
func (nw *Network) VertexCount() int { return nw.n }

// Skipped returns how many tuples were dropped under WithSkipInvalidEdges.
func (nw *Network) Skipped() int { return nw.skipped }

// HasEdge reports whether (u, v) was declared through AddEdge.
func (nw *Network) HasEdge(u, v int) bool {
	return nw.valid(u) && nw.valid(v) && nw.present[u*nw.n+v]
}

// Capacity returns capacity[u][v].
func (nw *Network) Capacity(u, v int) (int64, error) {
	if err := nw.check(u, v); err != nil {
		return 0, err
	}

	return nw.capRows[u][v], nil
}

// Residual returns residual[u][v].
func (nw *Network) Residual(u, v int) (int64, error) {
	if err := nw.check(u, v); err != nil {
		return 0, err
	}

	return nw.resRows[u][v], nil
}

// Cost returns cost[u][v] (negative on reverse arcs of positive-cost edges).
func (nw *Network) Cost(u, v int) (int64, error) {
	if err := nw.check(u, v); err != nil {
		return 0, err
	}

	return nw.costRows[u][v], nil
}

// Push moves amount units of flow along u→v:
//
//	residual[u][v] -= amount
//	residual[v][u] += amount
//
// Errors: ErrVertexOutOfRange, ErrInsufficientResidual (amount < 0 or
// amount > residual[u][v]). On error the network is unchanged.
func (nw *Network) Push(u, v int, amount int64) error {
	if err := nw.check(u, v); err != nil {
		return err
	}
	if amount < 0 || amount > nw.resRows[u][v] {
		return fmt.Errorf("push %d on %d->%d (residual %d): %w", amount, u, v, nw.resRows[u][v], ErrInsufficientResidual)
	}
	nw.resRows[u][v] -= amount
	nw.resRows[v][u] += amount

	return nil
}

// Reset restores residual = capacity, discarding all pushed flow.
func (nw *Network) Reset() {
	// Shapes match by construction.
	_ = nw.residual.CopyFrom(nw.capacity)
}

// Clone returns an independent deep copy (matrices, mask, options).
func (nw *Network) Clone() *Network {
	c := &Network{
		n:        nw.n,
		cfg:      nw.cfg,
		capacity: nw.capacity.Clone(),
		residual: nw.residual.Clone(),
		cost:     nw.cost.Clone(),
		declared: nw.declared.Clone(),
		present:  append([]bool(nil), nw.present...),
		skipped:  nw.skipped,
	}
	// Row() cannot fail on a matrix cloned from a valid one.
	_ = c.bindRows()

	return c
}

// Edges lists the declared edges, with their declared costs, in
// pair-enumeration order (u ascending, then v ascending).
func (nw *Network) Edges() []Edge {
	var out []Edge
	for u := 0; u < nw.n; u++ {
		for v := 0; v < nw.n; v++ {
			if nw.present[u*nw.n+v] {
				out = append(out, Edge{From: u, To: v, Capacity: nw.capRows[u][v], Cost: nw.declRows[u][v]})
			}
		}
	}

	return out
}

// CapacityMatrix returns a copy of the capacity matrix.
func (nw *Network) CapacityMatrix() *matrix.Dense { return nw.capacity.Clone() }

// ResidualMatrix returns a copy of the residual matrix.
func (nw *Network) ResidualMatrix() *matrix.Dense { return nw.residual.Clone() }

// CostMatrix returns a copy of the residual arc cost matrix.
func (nw *Network) CostMatrix() *matrix.Dense { return nw.cost.Clone() }

// FlowMatrix derives the flow on every declared forward edge:
//
//	flow[u][v] = clamp(capacity[u][v] - residual[u][v], 0, capacity[u][v])
//
// and 0 on every other pair (reverse arcs, absent pairs).
func (nw *Network) FlowMatrix() *matrix.Dense {
	out, _ := matrix.NewSquare(nw.n)
	for u := 0; u < nw.n; u++ {
		row, _ := out.Row(u)
		for v := 0; v < nw.n; v++ {
			if !nw.present[u*nw.n+v] {
				continue
			}
			c := nw.capRows[u][v]
			f := c - nw.resRows[u][v]
			switch {
			case f < 0:
				f = 0
			case f > c:
				f = c
			}
			row[v] = f
		}
	}

	return out
}
