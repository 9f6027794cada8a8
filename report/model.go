// SPDX-License-Identifier: MIT

package report

import (
	"github.com/katalvlaran/costflow/bellmanford"
	"github.com/katalvlaran/costflow/core"
	"github.com/katalvlaran/costflow/flow"
)

// EdgeFlow is the flow carried by one declared edge.
type EdgeFlow struct {
	From int   `json:"from" yaml:"from"`
	To   int   `json:"to" yaml:"to"`
	Flow int64 `json:"flow" yaml:"flow"`
	Cost int64 `json:"cost" yaml:"cost"`
}

// EdgeFlows lists declared edges with positive flow in pair order.
func EdgeFlows(nw *core.Network, res *flow.Result) []EdgeFlow {
	var out []EdgeFlow
	for _, e := range nw.Edges() {
		f, err := res.Flow.At(e.From, e.To)
		if err != nil || f <= 0 {
			continue
		}
		out = append(out, EdgeFlow{From: e.From, To: e.To, Flow: f, Cost: e.Cost})
	}

	return out
}

// SolveDoc is the export model of one solve (JSON, YAML).
type SolveDoc struct {
	ID         string      `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Source     int         `json:"source" yaml:"source"`
	Sink       int         `json:"sink" yaml:"sink"`
	TotalFlow  int64       `json:"total_flow" yaml:"total_flow"`
	TotalCost  int64       `json:"total_cost" yaml:"total_cost"`
	ScaledCost int64       `json:"scaled_cost" yaml:"scaled_cost"`
	Paths      []flow.Path `json:"paths" yaml:"paths"`
	Flow       []EdgeFlow  `json:"flow" yaml:"flow"`
}

// NewSolveDoc builds the export model. Empty lists are non-nil so JSON
// renders [] rather than null.
func NewSolveDoc(name string, nw *core.Network, res *flow.Result) SolveDoc {
	doc := SolveDoc{
		Name:       name,
		Source:     res.Source,
		Sink:       res.Sink,
		TotalFlow:  res.TotalFlow,
		TotalCost:  res.TotalCost,
		ScaledCost: res.ScaledCost,
		Paths:      res.Paths,
		Flow:       EdgeFlows(nw, res),
	}
	if doc.Paths == nil {
		doc.Paths = []flow.Path{}
	}
	if doc.Flow == nil {
		doc.Flow = []EdgeFlow{}
	}

	return doc
}

// PathsDoc is the export model of a standalone shortest-path run. Dist
// entries are nil for unreached vertices; Cycle is set instead of Dist/Pred
// when a negative cycle was found.
type PathsDoc struct {
	ID            string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string   `json:"name,omitempty" yaml:"name,omitempty"`
	Source        int      `json:"source" yaml:"source"`
	Dist          []*int64 `json:"dist,omitempty" yaml:"dist,omitempty"`
	Pred          []int    `json:"pred,omitempty" yaml:"pred,omitempty"`
	NegativeCycle bool     `json:"negative_cycle,omitempty" yaml:"negative_cycle,omitempty"`
	Cycle         []int    `json:"cycle,omitempty" yaml:"cycle,omitempty"`
}

// NewPathsDoc builds the export model from a successful run.
func NewPathsDoc(name string, res *bellmanford.Result) PathsDoc {
	doc := PathsDoc{
		Name:   name,
		Source: res.Source,
		Dist:   make([]*int64, len(res.Dist)),
		Pred:   append([]int(nil), res.Pred...),
	}
	for v, d := range res.Dist {
		if d != bellmanford.Infinite {
			d := d
			doc.Dist[v] = &d
		}
	}

	return doc
}

// NewCycleDoc builds the export model of a failed run.
func NewCycleDoc(name string, source int, nce bellmanford.NegativeCycleError) PathsDoc {
	return PathsDoc{Name: name, Source: source, NegativeCycle: true, Cycle: nce.Cycle}
}
