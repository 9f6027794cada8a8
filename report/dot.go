// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/costflow/core"
	"github.com/katalvlaran/costflow/flow"
)

// ToDOT renders the network as a Graphviz digraph. Every declared edge is
// labelled "flow/capacity $cost"; edges that carry flow are drawn bold.
// res may be nil to draw the unsolved network ("capacity $cost").
func ToDOT(name string, nw *core.Network, res *flow.Result) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	n := nw.VertexCount()
	for v := 0; v < n; v++ {
		attrs := ""
		switch {
		case res != nil && v == res.Source:
			attrs = " [fillcolor=\"#c6f0d9\", xlabel=\"source\"]"
		case res != nil && v == res.Sink:
			attrs = " [fillcolor=\"#f9d3c8\", xlabel=\"sink\"]"
		}
		fmt.Fprintf(&buf, "  %d%s;\n", v, attrs)
	}

	buf.WriteString("\n")
	for _, e := range nw.Edges() {
		if res == nil {
			fmt.Fprintf(&buf, "  %d -> %d [label=\"%d $%d\"];\n", e.From, e.To, e.Capacity, e.Cost)
			continue
		}
		f, _ := res.Flow.At(e.From, e.To)
		style := ""
		if f > 0 {
			style = ", penwidth=2.5, color=\"#2a7ab0\""
		}
		fmt.Fprintf(&buf, "  %d -> %d [label=\"%d/%d $%d\"%s];\n", e.From, e.To, f, e.Capacity, e.Cost, style)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
