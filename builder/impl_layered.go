// SPDX-License-Identifier: MIT
// Package: costflow/builder
//
// impl_layered.go - implementation of Layered(layers, width) constructor.
//
// Layout (n = nw.VertexCount(), source 0, sink n-1):
//
//	layer l, slot i → vertex 1 + l·width + i
//
// Emission order:
//  1. source → every vertex of layer 0 (slot ascending)
//  2. for l ascending: every a in layer l → every b in layer l+1 (a, then b ascending)
//  3. every vertex of the last layer → sink
//
// Contract:
//   - layers ≥ 1, width ≥ 1, n ≥ layers·width + 2 (else ErrTooFewVertices).
//
// Complexity: O(layers·width²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/costflow/core"
)

const methodLayered = "Layered"

// Layered returns a Constructor that builds a layered DAG with complete
// bipartite connections between consecutive layers.
func Layered(layers, width int) Constructor {
	return func(nw *core.Network, cfg builderConfig) error {
		if layers < 1 || width < 1 {
			return fmt.Errorf("%s: layers=%d width=%d, both must be ≥ 1: %w", methodLayered, layers, width, ErrTooFewVertices)
		}
		n := nw.VertexCount()
		if need := layers*width + 2; n < need {
			return fmt.Errorf("%s: need %d vertices, have %d: %w", methodLayered, need, n, ErrTooFewVertices)
		}
		at := func(l, i int) int { return 1 + l*width + i }

		for i := 0; i < width; i++ {
			if err := addEdge(nw, cfg, methodLayered, 0, at(0, i)); err != nil {
				return err
			}
		}
		for l := 0; l+1 < layers; l++ {
			for a := 0; a < width; a++ {
				for b := 0; b < width; b++ {
					if err := addEdge(nw, cfg, methodLayered, at(l, a), at(l+1, b)); err != nil {
						return err
					}
				}
			}
		}
		for i := 0; i < width; i++ {
			if err := addEdge(nw, cfg, methodLayered, at(layers-1, i), n-1); err != nil {
				return err
			}
		}

		return nil
	}
}
