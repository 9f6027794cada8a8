// SPDX-License-Identifier: MIT

package bellmanford

import (
	"fmt"
	"math"
)

// Relax runs exactly n-1 full relaxation passes over g from source and
// returns the distance and predecessor vectors. It performs no cycle check:
// the flow engine calls it on residual graphs that are free of negative
// cycles reachable from the source.
//
// Each pass enumerates ordered pairs u ascending, then v ascending, and
// relaxes u→v when the arc exists, Dist[u] is finite and
// Dist[u]+cost < Dist[v]. Ties keep the first predecessor found in that order.
// A sum that would overflow int64 or reach Infinite never relaxes.
//
// Errors: ErrNilGraph, ErrSourceOutOfRange.
//
// Complexity: O(n³) time (n-1 passes over n² pairs), O(n) space.
func Relax(g Graph, source int) (*Result, error) {
	r, err := newRunner(g, source)
	if err != nil {
		return nil, err
	}
	for pass := 1; pass < r.n; pass++ {
		r.pass()
	}

	return r.result(), nil
}

// ShortestPaths is the standalone single-source shortest-path primitive:
// Relax followed by the negative-cycle guard, one additional full pass. If
// any arc still relaxes, a negative cycle is reachable from source and a
// NegativeCycleError (matching ErrNegativeCycle) is returned instead of a
// distance table.
//
// Errors: ErrNilGraph, ErrSourceOutOfRange, ErrNegativeCycle.
func ShortestPaths(g Graph, source int) (*Result, error) {
	r, err := newRunner(g, source)
	if err != nil {
		return nil, err
	}
	for pass := 1; pass < r.n; pass++ {
		r.pass()
	}
	if err = r.guard(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// HasNegativeCycle runs the guard pass against an existing Result computed
// on g. It does not modify res. Used by the flow engine's optional cycle check.
func HasNegativeCycle(g Graph, res *Result) error {
	if g == nil {
		return ErrNilGraph
	}
	if res == nil || len(res.Dist) != g.VertexCount() {
		return fmt.Errorf("HasNegativeCycle: result does not match graph: %w", ErrSourceOutOfRange)
	}
	r := &runner{
		g:    g,
		n:    g.VertexCount(),
		dist: append([]int64(nil), res.Dist...),
		pred: append([]int(nil), res.Pred...),
		src:  res.Source,
	}

	return r.guard()
}

// runner holds the mutable state of a single relaxation run.
type runner struct {
	g    Graph
	n    int
	src  int
	dist []int64
	pred []int
}

// newRunner validates inputs and initializes Dist/Pred:
// Dist[source]=0, all others Infinite; Pred all NoVertex.
func newRunner(g Graph, source int) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("source %d in %d-vertex graph: %w", source, n, ErrSourceOutOfRange)
	}

	r := &runner{
		g:    g,
		n:    n,
		src:  source,
		dist: make([]int64, n),
		pred: make([]int, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Infinite
		r.pred[v] = NoVertex
	}
	r.dist[source] = 0

	return r, nil
}

// pass performs one full relaxation pass and reports the first pair that
// relaxed, or ok=false if the pass changed nothing.
func (r *runner) pass() (u0, v0 int, ok bool) {
	for u := 0; u < r.n; u++ {
		for v := 0; v < r.n; v++ {
			// Dist[u] is re-read per pair: an arc into u earlier in this row
			// may have just lowered it.
			du := r.dist[u]
			if du == Infinite {
				continue
			}
			cost, exists := r.g.Arc(u, v)
			if !exists {
				continue
			}
			sum, fits := addCost(du, cost)
			if fits && sum < r.dist[v] {
				r.dist[v] = sum
				r.pred[v] = u
				if !ok {
					u0, v0, ok = u, v, true
				}
			}
		}
	}

	return u0, v0, ok
}

// addCost returns du+cost and whether it stays strictly inside
// (math.MinInt64, Infinite). A sum outside that range is never a relaxation.
func addCost(du, cost int64) (int64, bool) {
	if cost > 0 && du > Infinite-1-cost {
		return 0, false
	}
	if cost < 0 && du < math.MinInt64+1-cost {
		return 0, false
	}

	return du + cost, true
}

// guard runs the extra pass. On improvement it isolates a cycle witness:
// walking n predecessor steps back from the relaxed vertex lands on the cycle.
func (r *runner) guard() error {
	_, v, relaxed := r.pass()
	if !relaxed {
		return nil
	}

	x := v
	for i := 0; i < r.n; i++ {
		x = r.pred[x]
		if x == NoVertex {
			return NegativeCycleError{}
		}
	}

	cycle := []int{x}
	for cur := r.pred[x]; cur != x; cur = r.pred[cur] {
		if cur == NoVertex || len(cycle) > r.n {
			return NegativeCycleError{}
		}
		cycle = append(cycle, cur)
	}
	// Collected backwards along Pred; reverse into arc order.
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return NegativeCycleError{Cycle: cycle}
}

// result snapshots the runner state.
func (r *runner) result() *Result {
	return &Result{Source: r.src, Dist: r.dist, Pred: r.pred}
}
