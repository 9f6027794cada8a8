// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/costflow/bellmanford"
	"github.com/katalvlaran/costflow/core"
)

// search runs the relaxer over the residual graph (arcs with residual > 0,
// reverse arcs carrying negated cost) and reports whether sink is reachable.
// The returned predecessor vector is fresh on every call.
func search(nw *core.Network, source, sink int, cycleCheck bool) (pred []int, ok bool, err error) {
	g := nw.ResidualArcs()
	res, err := bellmanford.Relax(g, source)
	if err != nil {
		return nil, false, err
	}
	if cycleCheck {
		if err = bellmanford.HasNegativeCycle(g, res); err != nil {
			return nil, false, fmt.Errorf("flow: residual graph: %w", err)
		}
	}

	return res.Pred, res.Pred[sink] != bellmanford.NoVertex, nil
}
