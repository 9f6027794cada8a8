// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/costflow/core"
)

// MinCostMaxFlow computes a minimum-cost maximum flow from source to the sink
// (n-1 unless WithSink is given) by successive shortest augmenting paths.
//
// The input network is never mutated: the engine solves on its own Clone, so
// identical inputs always produce identical results, and concurrent solves of
// one network are safe as long as nobody mutates it meanwhile.
//
// Loop:
//  1. Search: Bellman-Ford over the residual graph from source.
//  2. Sink unreachable → Done.
//  3. Augment: push the bottleneck along the cheapest path, log the record.
//
// ctx is checked between iterations only; a single search always completes.
//
// Errors:
//   - ErrNilNetwork, ErrSourceOutOfRange, ErrSinkOutOfRange, ErrSourceIsSink
//   - bellmanford.ErrNegativeCycle when the residual graph is found to hold a
//     negative cycle (bounded path walk, or the WithCycleCheck guard)
//   - ctx.Err() on cancellation
//
// Complexity: O(n³) per iteration.
func MinCostMaxFlow(ctx context.Context, net *core.Network, source int, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := net.VertexCount()
	sink := o.sink
	if sink == DefaultSink {
		sink = n - 1
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("source %d in %d-vertex network: %w", source, n, ErrSourceOutOfRange)
	}
	if sink < 0 || sink >= n {
		return nil, fmt.Errorf("sink %d in %d-vertex network: %w", sink, n, ErrSinkOutOfRange)
	}
	if source == sink {
		return nil, fmt.Errorf("vertex %d: %w", source, ErrSourceIsSink)
	}

	e := &engine{
		nw:     net.Clone(),
		source: source,
		sink:   sink,
		opts:   o,
	}
	if err := e.run(ctx); err != nil {
		return nil, err
	}

	return e.result(), nil
}

// engine holds the per-solve state; it is never shared between solves.
type engine struct {
	nw           *core.Network
	source, sink int
	opts         options

	paths      []Path
	totalFlow  int64
	totalCost  int64
	scaledCost int64
}

func (e *engine) run(ctx context.Context) error {
	log := e.opts.logger
	for iter := 1; ; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		pred, ok, err := search(e.nw, e.source, e.sink, e.opts.cycleCheck)
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		p, err := augment(e.nw, pred, e.source, e.sink)
		if err != nil {
			return err
		}
		e.paths = append(e.paths, p)
		e.totalFlow += p.Flow
		e.totalCost += p.Cost
		e.scaledCost += p.Cost * p.Flow

		if log != nil {
			log.Debug("augmented", "iteration", iter, "path", p.Vertices, "flow", p.Flow, "cost", p.Cost)
		}
		if e.opts.onAugment != nil {
			e.opts.onAugment(Step{
				Iteration: iter,
				Path:      p,
				TotalFlow: e.totalFlow,
				TotalCost: e.totalCost,
				Flow:      e.nw.FlowMatrix(),
				Residual:  e.nw.ResidualMatrix(),
			})
		}
	}

	if log != nil {
		log.Debug("solved", "source", e.source, "sink", e.sink,
			"paths", len(e.paths), "flow", e.totalFlow, "cost", e.totalCost)
	}

	return nil
}

func (e *engine) result() *Result {
	return &Result{
		Source:     e.source,
		Sink:       e.sink,
		TotalFlow:  e.totalFlow,
		TotalCost:  e.totalCost,
		ScaledCost: e.scaledCost,
		Paths:      e.paths,
		Flow:       e.nw.FlowMatrix(),
		Residual:   e.nw.ResidualMatrix(),
		Iterations: len(e.paths),
	}
}
