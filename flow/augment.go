// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/costflow/bellmanford"
	"github.com/katalvlaran/costflow/core"
)

// trace walks pred from sink back to source and returns the vertex sequence
// in source-first order. The walk is bounded by the vertex count: a longer
// chain can only come from a negative cycle in the residual graph.
func trace(pred []int, source, sink int) ([]int, error) {
	n := len(pred)
	path := []int{sink}
	for v := sink; v != source; {
		u := pred[v]
		if u == bellmanford.NoVertex {
			return nil, fmt.Errorf("vertex %d: %w", v, ErrBrokenPath)
		}
		path = append(path, u)
		if len(path) > n {
			return nil, fmt.Errorf("flow: path walk exceeded %d vertices: %w", n, bellmanford.ErrNegativeCycle)
		}
		v = u
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// augment pushes the bottleneck along the path described by pred and returns
// the record to log. Steps:
//  1. Rebuild the vertex sequence (trace).
//  2. bottleneck = min residual[u][v], pathCost = Σ cost[u][v] over its arcs.
//  3. residual[u][v] -= bottleneck, residual[v][u] += bottleneck on every arc.
func augment(nw *core.Network, pred []int, source, sink int) (Path, error) {
	vertices, err := trace(pred, source, sink)
	if err != nil {
		return Path{}, err
	}

	bottleneck := int64(math.MaxInt64)
	var pathCost int64
	for i := 0; i+1 < len(vertices); i++ {
		u, v := vertices[i], vertices[i+1]
		r, err := nw.Residual(u, v)
		if err != nil {
			return Path{}, err
		}
		c, err := nw.Cost(u, v)
		if err != nil {
			return Path{}, err
		}
		if r < bottleneck {
			bottleneck = r
		}
		pathCost += c
	}
	if bottleneck <= 0 || bottleneck == math.MaxInt64 {
		return Path{}, fmt.Errorf("bottleneck %d on %v: %w", bottleneck, vertices, ErrBrokenPath)
	}

	for i := 0; i+1 < len(vertices); i++ {
		if err = nw.Push(vertices[i], vertices[i+1], bottleneck); err != nil {
			return Path{}, fmt.Errorf("flow: %w", err)
		}
	}

	return Path{Vertices: vertices, Flow: bottleneck, Cost: pathCost}, nil
}
