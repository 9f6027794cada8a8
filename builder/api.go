// SPDX-License-Identifier: MIT
// Package: costflow/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(n, nopts, bopts, cons...). Creates the
//     network, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical networks.
//   - Constructors never panic; they return sentinel errors wrapped with %w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/costflow/core"
)

// Constructor adds edges to an existing network using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters against nw.VertexCount() before the first AddEdge.
//   - Emit edges in a stable, documented order.
//   - Draw capacity before cost for every edge (fixed RNG consumption order).
type Constructor func(nw *core.Network, cfg builderConfig) error

// BuildNetwork allocates an n-vertex network with network options nopts,
// resolves the builder configuration from bopts and applies all constructors
// in order. Constructor errors are wrapped as "BuildNetwork: %w"; the partial
// network is discarded.
//
// Errors:
//   - core.ErrBadVertexCount for n <= 0.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildNetwork(n int, nopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	nw, err := core.NewNetwork(n, nopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(nw, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return nw, nil
}

// addEdge draws capacity then cost and declares u→v.
func addEdge(nw *core.Network, cfg builderConfig, method string, u, v int) error {
	c := cfg.capacityFn(cfg.rng)
	w := cfg.costFn(cfg.rng)
	if err := nw.AddEdge(core.Edge{From: u, To: v, Capacity: c, Cost: w}); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Vertex 0 is the source and n-1 the sink for every topology that has both.
//
//	Path(k)                 chain 0→1→…→k-1
//	Parallel(routes, hops)  disjoint 0→…→n-1 routes of hops interior vertices each
//	Layered(layers, width)  source → layer₁ ⇉ … ⇉ layer_L → sink, complete between layers
//	RandomSparse(p)         DAG: each i→j with i<j kept with probability p
