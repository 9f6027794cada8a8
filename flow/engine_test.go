package flow_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/costflow/bellmanford"
	"github.com/katalvlaran/costflow/core"
	"github.com/katalvlaran/costflow/flow"
)

// at reads one cell of a flow or residual matrix.
func at(t require.TestingT, res *flow.Result, u, v int) int64 {
	f, err := res.Flow.At(u, v)
	require.NoError(t, err)
	return f
}

// twoRoutes: 0→1→3 (cap 5/2, cost 2) and 0→2→3 (cap 3, cost 1).
func twoRoutes() []core.Edge {
	return []core.Edge{
		{From: 0, To: 1, Capacity: 5, Cost: 2},
		{From: 0, To: 2, Capacity: 3, Cost: 1},
		{From: 1, To: 3, Capacity: 2, Cost: 0},
		{From: 2, To: 3, Capacity: 3, Cost: 0},
	}
}

// rerouting forces the second path through the reverse arc 2→1.
func rerouting() []core.Edge {
	return []core.Edge{
		{From: 0, To: 1, Capacity: 1, Cost: 1},
		{From: 1, To: 2, Capacity: 1, Cost: 1},
		{From: 2, To: 3, Capacity: 1, Cost: 1},
		{From: 0, To: 2, Capacity: 1, Cost: 3},
		{From: 1, To: 3, Capacity: 1, Cost: 3},
	}
}

// EngineSuite groups tests for MinCostMaxFlow.
type EngineSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *EngineSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *EngineSuite) network(n int, edges []core.Edge) *core.Network {
	nw, err := core.FromEdges(n, edges)
	s.Require().NoError(err)
	return nw
}

// TestCheaperPathFirst: 3 units at cost 1, then 2 units at cost 2.
func (s *EngineSuite) TestCheaperPathFirst() {
	res, err := flow.MinCostMaxFlow(s.ctx, s.network(4, twoRoutes()), 0)
	s.Require().NoError(err)

	s.Require().Len(res.Paths, 2)
	s.Equal(flow.Path{Vertices: []int{0, 2, 3}, Flow: 3, Cost: 1}, res.Paths[0])
	s.Equal(flow.Path{Vertices: []int{0, 1, 3}, Flow: 2, Cost: 2}, res.Paths[1])
	s.Equal("[0, 2, 3](3) $1", res.Paths[0].String())

	s.Equal(int64(5), res.TotalFlow)
	s.Equal(int64(3), res.TotalCost, "unscaled: one term per path")
	s.Equal(int64(7), res.ScaledCost, "3·1 + 2·2")
	s.Equal(2, res.Iterations)
	s.Equal(3, res.Sink)

	s.Equal(int64(2), at(s.T(), res, 0, 1))
	s.Equal(int64(3), at(s.T(), res, 0, 2))
	s.Equal(int64(2), at(s.T(), res, 1, 3))
	s.Equal(int64(3), at(s.T(), res, 2, 3))
	s.Equal(int64(0), at(s.T(), res, 1, 0))
}

// TestReroutesThroughReverseArc: the second path cancels flow on 1→2.
func (s *EngineSuite) TestReroutesThroughReverseArc() {
	res, err := flow.MinCostMaxFlow(s.ctx, s.network(4, rerouting()), 0)
	s.Require().NoError(err)

	s.Require().Len(res.Paths, 2)
	s.Equal([]int{0, 1, 2, 3}, res.Paths[0].Vertices)
	s.Equal(int64(3), res.Paths[0].Cost)
	s.Equal([]int{0, 2, 1, 3}, res.Paths[1].Vertices)
	s.Equal(int64(5), res.Paths[1].Cost, "3 - 1 + 3 through the reverse arc")

	s.Equal(int64(2), res.TotalFlow)
	s.Equal(int64(8), res.TotalCost)
	s.Equal(int64(0), at(s.T(), res, 1, 2), "re-routing cancels the middle edge")

	// Final routing 0→1→3 + 0→2→3 costs 1+3+3+1 = 8 – no worse than before.
	var cost int64
	for _, e := range []core.Edge{{From: 0, To: 1, Cost: 1}, {From: 1, To: 3, Cost: 3}, {From: 0, To: 2, Cost: 3}, {From: 2, To: 3, Cost: 1}} {
		cost += at(s.T(), res, e.From, e.To) * e.Cost
	}
	s.Equal(res.ScaledCost, cost)
}

// TestDisconnectedSink: nothing to push, empty log.
// TestAntiparallelSharesResidualCost: 1→0 is declared after 0→1, so the
// residual cell cost[0][1] holds -3 and the engine routes at that cost.
func (s *EngineSuite) TestAntiparallelSharesResidualCost() {
	nw := s.network(3, []core.Edge{
		{From: 0, To: 1, Capacity: 2, Cost: 5},
		{From: 1, To: 0, Capacity: 1, Cost: 3},
		{From: 1, To: 2, Capacity: 2, Cost: 1},
	})

	res, err := flow.MinCostMaxFlow(s.ctx, nw, 0)
	s.Require().NoError(err)

	s.Require().Len(res.Paths, 1)
	s.Equal(flow.Path{Vertices: []int{0, 1, 2}, Flow: 2, Cost: -2}, res.Paths[0])
	s.Equal(int64(2), res.TotalFlow)
	s.Equal(int64(-2), res.TotalCost)
	s.Equal(int64(-4), res.ScaledCost)

	s.Equal(int64(2), at(s.T(), res, 0, 1))
	s.Equal(int64(0), at(s.T(), res, 1, 0))
	s.Equal(int64(2), at(s.T(), res, 1, 2))

	// The declared view is unaffected by the shared residual cell.
	c, ok := nw.Arcs().Arc(0, 1)
	s.True(ok)
	s.Equal(int64(5), c)
}

func (s *EngineSuite) TestDisconnectedSink() {
	nw := s.network(4, []core.Edge{
		{From: 0, To: 1, Capacity: 4, Cost: 1},
		{From: 1, To: 2, Capacity: 4, Cost: 1},
	})

	res, err := flow.MinCostMaxFlow(s.ctx, nw, 0)
	s.Require().NoError(err)
	s.Zero(res.TotalFlow)
	s.Zero(res.TotalCost)
	s.Empty(res.Paths)
	s.Zero(res.Flow.Sum())
}

// TestInputUntouched: the engine solves on a clone.
func (s *EngineSuite) TestInputUntouched() {
	nw := s.network(4, twoRoutes())
	before := nw.ResidualMatrix()

	first, err := flow.MinCostMaxFlow(s.ctx, nw, 0)
	s.Require().NoError(err)
	second, err := flow.MinCostMaxFlow(s.ctx, nw, 0)
	s.Require().NoError(err)

	s.Equal(before.String(), nw.ResidualMatrix().String())
	s.Equal(first.Paths, second.Paths, "identical input ⇒ identical path log")
}

// TestExplicitSink routes to an interior vertex.
func (s *EngineSuite) TestExplicitSink() {
	res, err := flow.MinCostMaxFlow(s.ctx, s.network(4, twoRoutes()), 0, flow.WithSink(1))
	s.Require().NoError(err)
	s.Equal(int64(5), res.TotalFlow)
	s.Equal(int64(2), res.TotalCost)
}

// TestZeroCapacityEdge never carries flow.
func (s *EngineSuite) TestZeroCapacityEdge() {
	nw := s.network(3, []core.Edge{
		{From: 0, To: 1, Capacity: 0, Cost: 0},
		{From: 1, To: 2, Capacity: 9, Cost: 0},
		{From: 0, To: 2, Capacity: 1, Cost: 50},
	})
	res, err := flow.MinCostMaxFlow(s.ctx, nw, 0)
	s.Require().NoError(err)
	s.Equal(int64(1), res.TotalFlow)
	s.Equal([]int{0, 2}, res.Paths[0].Vertices)
}

// TestValidation covers every precondition.
func (s *EngineSuite) TestValidation() {
	nw := s.network(4, twoRoutes())

	_, err := flow.MinCostMaxFlow(s.ctx, nil, 0)
	s.ErrorIs(err, flow.ErrNilNetwork)
	_, err = flow.MinCostMaxFlow(s.ctx, nw, 4)
	s.ErrorIs(err, flow.ErrSourceOutOfRange)
	_, err = flow.MinCostMaxFlow(s.ctx, nw, -1)
	s.ErrorIs(err, flow.ErrSourceOutOfRange)
	_, err = flow.MinCostMaxFlow(s.ctx, nw, 0, flow.WithSink(9))
	s.ErrorIs(err, flow.ErrSinkOutOfRange)
	_, err = flow.MinCostMaxFlow(s.ctx, nw, 3)
	s.ErrorIs(err, flow.ErrSourceIsSink)

	s.Panics(func() { flow.WithOnAugment(nil) })
}

// TestNegativeCycleAsserted: a negative cycle in the input is reported, not
// silently solved.
func (s *EngineSuite) TestNegativeCycleAsserted() {
	edges := []core.Edge{
		{From: 0, To: 1, Capacity: 1, Cost: 1},
		{From: 1, To: 2, Capacity: 1, Cost: -5},
		{From: 2, To: 3, Capacity: 1, Cost: 1},
		{From: 3, To: 1, Capacity: 1, Cost: 1},
		{From: 2, To: 4, Capacity: 1, Cost: 1},
	}

	_, err := flow.MinCostMaxFlow(s.ctx, s.network(5, edges), 0, flow.WithCycleCheck())
	s.Require().ErrorIs(err, bellmanford.ErrNegativeCycle)
	var nce bellmanford.NegativeCycleError
	s.True(errors.As(err, &nce))
	s.ElementsMatch([]int{1, 2, 3}, nce.Cycle)
}

// TestCanceledContext stops before the first search.
func (s *EngineSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := flow.MinCostMaxFlow(ctx, s.network(4, twoRoutes()), 0)
	s.ErrorIs(err, context.Canceled)
}

// TestLogger emits one debug line per augmentation plus a summary.
func (s *EngineSuite) TestLogger() {
	var buf bytes.Buffer
	logger := charmlog.NewWithOptions(&buf, charmlog.Options{Level: charmlog.DebugLevel})

	_, err := flow.MinCostMaxFlow(s.ctx, s.network(4, twoRoutes()), 0, flow.WithLogger(logger))
	s.Require().NoError(err)
	out := buf.String()
	s.Equal(2, bytes.Count(buf.Bytes(), []byte("augmented")))
	s.Contains(out, "solved")
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}
