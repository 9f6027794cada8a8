// SPDX-License-Identifier: MIT
// Package: costflow/builder
//
// impl_parallel.go - implementation of Parallel(routes, hops) constructor.
//
// Layout (n = nw.VertexCount(), source 0, sink n-1):
//
//	route r uses interior vertices 1+r·hops … (r+1)·hops
//	0 → first → … → last → n-1
//
// Contract:
//   - routes ≥ 1, hops ≥ 1 (else ErrTooFewVertices).
//   - n ≥ routes·hops + 2 (else ErrTooFewVertices); extra vertices stay isolated.
//   - Routes are emitted in r ascending, each from source to sink.
//
// Complexity: O(routes·hops) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/costflow/core"
)

const methodParallel = "Parallel"

// Parallel returns a Constructor that joins source and sink through vertex-disjoint routes.
func Parallel(routes, hops int) Constructor {
	return func(nw *core.Network, cfg builderConfig) error {
		if routes < 1 || hops < 1 {
			return fmt.Errorf("%s: routes=%d hops=%d, both must be ≥ 1: %w", methodParallel, routes, hops, ErrTooFewVertices)
		}
		n := nw.VertexCount()
		if need := routes*hops + 2; n < need {
			return fmt.Errorf("%s: need %d vertices, have %d: %w", methodParallel, need, n, ErrTooFewVertices)
		}

		sink := n - 1
		for r := 0; r < routes; r++ {
			first := 1 + r*hops
			last := first + hops - 1
			if err := addEdge(nw, cfg, methodParallel, 0, first); err != nil {
				return err
			}
			for v := first; v < last; v++ {
				if err := addEdge(nw, cfg, methodParallel, v, v+1); err != nil {
					return err
				}
			}
			if err := addEdge(nw, cfg, methodParallel, last, sink); err != nil {
				return err
			}
		}

		return nil
	}
}
