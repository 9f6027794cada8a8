// SPDX-License-Identifier: MIT
// Package: costflow/builder
//
// impl_path.go - implementation of Path(k) constructor.
//
// Contract:
//   - 2 ≤ k ≤ nw.VertexCount() (else ErrTooFewVertices).
//   - Emits edges (i-1)→i for i=1..k-1 in increasing order.
//
// Complexity: O(k) edges, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/costflow/core"
)

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor that chains vertices 0→1→…→k-1.
func Path(k int) Constructor {
	return func(nw *core.Network, cfg builderConfig) error {
		if k < minPathVertices {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodPath, k, minPathVertices, ErrTooFewVertices)
		}
		if n := nw.VertexCount(); k > n {
			return fmt.Errorf("%s: k=%d exceeds %d vertices: %w", methodPath, k, n, ErrTooFewVertices)
		}

		for i := 1; i < k; i++ {
			if err := addEdge(nw, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
