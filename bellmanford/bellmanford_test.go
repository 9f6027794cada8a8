package bellmanford_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costflow/bellmanford"
	"github.com/katalvlaran/costflow/core"
)

// build constructs a unit-capacity network whose plain arc view is the cost graph.
func build(t *testing.T, n int, arcs [][3]int64) *core.Network {
	t.Helper()
	edges := make([]core.Edge, 0, len(arcs))
	for _, a := range arcs {
		edges = append(edges, core.Edge{From: int(a[0]), To: int(a[1]), Capacity: 1, Cost: a[2]})
	}
	nw, err := core.FromEdges(n, edges)
	require.NoError(t, err)

	return nw
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPaths_Validation(t *testing.T) {
	_, err := bellmanford.ShortestPaths(nil, 0)
	require.ErrorIs(t, err, bellmanford.ErrNilGraph)

	nw := build(t, 2, [][3]int64{{0, 1, 1}})
	_, err = bellmanford.ShortestPaths(nw.Arcs(), 2)
	require.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)
	_, err = bellmanford.Relax(nw.Arcs(), -1)
	require.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)
}

// ------------------------------------------------------------------------
// 2. Distances and predecessors
// ------------------------------------------------------------------------

func TestShortestPaths_Distances(t *testing.T) {
	nw := build(t, 4, [][3]int64{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 1}, {2, 3, 5},
	})

	res, err := bellmanford.ShortestPaths(nw.Arcs(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, 1, 4}, res.Dist)
	assert.Equal(t, []int{bellmanford.NoVertex, 2, 0, 1}, res.Pred)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)

	self, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, self)
}

func TestRelax_TieKeepsFirstPredecessor(t *testing.T) {
	nw := build(t, 4, [][3]int64{
		{0, 1, 1}, {0, 2, 1}, {1, 3, 1}, {2, 3, 1},
	})

	res, err := bellmanford.Relax(nw.Arcs(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Dist[3])
	assert.Equal(t, 1, res.Pred[3], "equal-cost 2→3 must not replace 1→3")
}

func TestShortestPaths_Unreachable(t *testing.T) {
	nw := build(t, 5, [][3]int64{{0, 1, 2}, {1, 2, 2}, {3, 4, 1}})

	res, err := bellmanford.ShortestPaths(nw.Arcs(), 0)
	require.NoError(t, err)
	assert.Equal(t, bellmanford.Infinite, res.Dist[3])
	assert.Equal(t, bellmanford.Infinite, res.Dist[4])
	assert.Equal(t, bellmanford.NoVertex, res.Pred[4])
	assert.False(t, res.Reachable(4))
	assert.True(t, res.Reachable(2))
	assert.False(t, res.Reachable(99))

	_, err = res.PathTo(4)
	require.ErrorIs(t, err, bellmanford.ErrUnreachable)
	_, err = res.PathTo(7)
	require.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)
}

func TestShortestPaths_NegativeArcWithoutCycle(t *testing.T) {
	nw := build(t, 3, [][3]int64{{0, 1, 5}, {1, 2, -4}, {0, 2, 3}})

	res, err := bellmanford.ShortestPaths(nw.Arcs(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 5, 1}, res.Dist)
	assert.Equal(t, 1, res.Pred[2])
}

// ------------------------------------------------------------------------
// 3. Negative cycles
// ------------------------------------------------------------------------

func TestShortestPaths_NegativeCycle(t *testing.T) {
	costs := map[[2]int]int64{{0, 1}: 1, {1, 2}: -3, {2, 3}: 1, {3, 1}: 1}
	var arcs [][3]int64
	for _, k := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}} {
		arcs = append(arcs, [3]int64{int64(k[0]), int64(k[1]), costs[k]})
	}
	nw := build(t, 4, arcs)

	res, err := bellmanford.ShortestPaths(nw.Arcs(), 0)
	require.Nil(t, res)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)

	var nce bellmanford.NegativeCycleError
	require.True(t, errors.As(err, &nce))
	assert.ElementsMatch(t, []int{1, 2, 3}, nce.Cycle)

	var total int64
	for i, u := range nce.Cycle {
		v := nce.Cycle[(i+1)%len(nce.Cycle)]
		c, ok := costs[[2]int{u, v}]
		require.True(t, ok, "witness step %d->%d must be an arc", u, v)
		total += c
	}
	assert.Negative(t, total)
	assert.Contains(t, err.Error(), "->")
}

func TestShortestPaths_NegativeCycleUnreachable(t *testing.T) {
	nw := build(t, 5, [][3]int64{{0, 1, 1}, {2, 3, -5}, {3, 4, 1}, {4, 2, 1}})

	res, err := bellmanford.ShortestPaths(nw.Arcs(), 0)
	require.NoError(t, err, "a cycle the source never reaches does not count")
	assert.False(t, res.Reachable(2))
}

func TestRelax_SkipsGuard(t *testing.T) {
	nw := build(t, 3, [][3]int64{{0, 1, 1}, {1, 2, -3}, {2, 0, 1}})

	res, err := bellmanford.Relax(nw.Arcs(), 0)
	require.NoError(t, err)
	assert.Negative(t, res.Dist[0], "without the guard the cycle silently lowers the source")
	require.ErrorIs(t, bellmanford.HasNegativeCycle(nw.Arcs(), res), bellmanford.ErrNegativeCycle)
}

func TestHasNegativeCycle_Clean(t *testing.T) {
	nw := build(t, 3, [][3]int64{{0, 1, 1}, {1, 2, 1}})
	res, err := bellmanford.Relax(nw.Arcs(), 0)
	require.NoError(t, err)

	before := append([]int64(nil), res.Dist...)
	require.NoError(t, bellmanford.HasNegativeCycle(nw.Arcs(), res))
	assert.Equal(t, before, res.Dist, "guard must not modify the result")

	require.ErrorIs(t, bellmanford.HasNegativeCycle(nil, res), bellmanford.ErrNilGraph)
	require.Error(t, bellmanford.HasNegativeCycle(nw.Arcs(), nil))
}

// ------------------------------------------------------------------------
// 4. Residual graphs
// ------------------------------------------------------------------------

func TestRelax_ResidualReverseArcs(t *testing.T) {
	nw, err := core.FromEdges(3, []core.Edge{
		{From: 0, To: 1, Capacity: 1, Cost: 2},
		{From: 1, To: 2, Capacity: 1, Cost: 2},
	})
	require.NoError(t, err)
	require.NoError(t, nw.Push(0, 1, 1))

	res, err := bellmanford.Relax(nw.ResidualArcs(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), res.Dist[0], "reverse arc carries the negated cost")
	assert.Equal(t, int64(2), res.Dist[2])
}

// ------------------------------------------------------------------------
// 5. Antiparallel edges and cost extremes
// ------------------------------------------------------------------------

func TestShortestPaths_AntiparallelKeepsDeclaredCosts(t *testing.T) {
	nw := build(t, 3, [][3]int64{{0, 1, 5}, {1, 0, 3}, {1, 2, 1}})

	res, err := bellmanford.ShortestPaths(nw.Arcs(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 5, 6}, res.Dist)
	assert.Equal(t, []int{bellmanford.NoVertex, 0, 1}, res.Pred)

	res, err = bellmanford.ShortestPaths(nw.Arcs(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, 1}, res.Dist, "1->0 relaxes at its own cost")
}

// arcGraph is a sparse Graph for costs a Network refuses to store.
type arcGraph struct {
	n    int
	arcs map[[2]int]int64
}

func (g arcGraph) VertexCount() int { return g.n }

func (g arcGraph) Arc(u, v int) (int64, bool) {
	c, ok := g.arcs[[2]int{u, v}]
	return c, ok
}

func TestShortestPaths_OverflowNeverRelaxes(t *testing.T) {
	half := int64(math.MaxInt64/2 + 1)
	g := arcGraph{n: 3, arcs: map[[2]int]int64{{0, 1}: half, {1, 2}: half}}

	res, err := bellmanford.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, half, res.Dist[1])
	assert.Equal(t, bellmanford.Infinite, res.Dist[2], "sum past MaxInt64 must not wrap negative")
	assert.False(t, res.Reachable(2))

	neg := arcGraph{n: 3, arcs: map[[2]int]int64{{0, 1}: -half, {1, 2}: -half}}
	res, err = bellmanford.ShortestPaths(neg, 0)
	require.NoError(t, err)
	assert.Equal(t, -half, res.Dist[1])
	assert.False(t, res.Reachable(2), "sum below MinInt64 must not wrap positive")
}

func TestShortestPaths_MaxCostDoesNotHitSentinel(t *testing.T) {
	g := arcGraph{n: 2, arcs: map[[2]int]int64{{0, 1}: math.MaxInt64}}

	res, err := bellmanford.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.False(t, res.Reachable(1))
	assert.Equal(t, bellmanford.NoVertex, res.Pred[1])
}

func TestShortestPaths_LimitCostsStayExact(t *testing.T) {
	const n = 4
	limit := core.CostLimit(n)
	nw := build(t, n, [][3]int64{{0, 1, limit}, {1, 2, limit}, {2, 3, limit}})

	res, err := bellmanford.ShortestPaths(nw.Arcs(), 0)
	require.NoError(t, err)
	assert.Equal(t, 3*limit, res.Dist[3])
	assert.Less(t, res.Dist[3], bellmanford.Infinite)
}

func BenchmarkShortestPaths_Chain64(b *testing.B) {
	const n = 64
	edges := make([]core.Edge, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, core.Edge{From: i, To: i + 1, Capacity: 1, Cost: int64(i % 5)})
	}
	nw, err := core.FromEdges(n, edges)
	if err != nil {
		b.Fatal(err)
	}
	g := nw.Arcs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bellmanford.ShortestPaths(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
