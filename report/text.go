// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/costflow/bellmanford"
	"github.com/katalvlaran/costflow/core"
	"github.com/katalvlaran/costflow/flow"
	"github.com/katalvlaran/costflow/matrix"
)

// Header writes the per-graph banner "\n****Find Flow <name>\n".
func Header(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "\n****Find Flow %s\n", name)
	return err
}

// MatrixText renders m with row and column indices, every cell "%5d":
//
//	"\n <label> \n     " + column indices + "\n" + one line per row
func MatrixText(label string, m *matrix.Dense) string {
	var sb strings.Builder
	sb.WriteString("\n " + label + " \n     ")
	for j := 0; j < m.Cols(); j++ {
		fmt.Fprintf(&sb, "%5d", j)
	}
	sb.WriteString("\n")
	for i := 0; i < m.Rows(); i++ {
		fmt.Fprintf(&sb, "%5d", i)
		row, _ := m.Row(i)
		for _, v := range row {
			fmt.Fprintf(&sb, "%5d", v)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Matrix writes MatrixText followed by a blank line.
func Matrix(w io.Writer, label string, m *matrix.Dense) error {
	_, err := fmt.Fprintln(w, MatrixText(label, m))
	return err
}

// Paths writes the augmentation log in discovery order.
func Paths(w io.Writer, name string, paths []flow.Path) error {
	if _, err := fmt.Fprintf(w, "Paths found in order (%s):\n", name); err != nil {
		return err
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}

	return nil
}

// FlowSummary writes "Flow u -> v (f) $ c" for every declared edge carrying
// positive flow, in pair order.
func FlowSummary(w io.Writer, nw *core.Network, res *flow.Result) error {
	if _, err := fmt.Fprintln(w, "Final flow on each edge:"); err != nil {
		return err
	}
	for _, e := range EdgeFlows(nw, res) {
		if _, err := fmt.Fprintf(w, "Flow %d -> %d (%d) $ %d\n", e.From, e.To, e.Flow, e.Cost); err != nil {
			return err
		}
	}

	return nil
}

// TextOptions selects optional sections of Solve.
type TextOptions struct {
	// Matrices adds the cost, final residual and flow matrices after the
	// capacity matrix.
	Matrices bool
}

// Solve writes the complete text report of one solve: banner, capacity
// matrix, path log, flow summary and, with Matrices, the other matrices.
func Solve(w io.Writer, name string, nw *core.Network, res *flow.Result, opts TextOptions) error {
	if err := Header(w, name); err != nil {
		return err
	}
	if err := Matrix(w, "Matrix", nw.CapacityMatrix()); err != nil {
		return err
	}
	if opts.Matrices {
		for _, s := range []struct {
			label string
			m     *matrix.Dense
		}{
			{"Edge Cost", nw.CostMatrix()},
			{"Residual", res.Residual},
			{"Flow", res.Flow},
		} {
			if err := Matrix(w, s.label, s.m); err != nil {
				return err
			}
		}
	}
	if err := Paths(w, name, res.Paths); err != nil {
		return err
	}

	return FlowSummary(w, nw, res)
}

// Distance renders one distance, "INF" for unreached vertices.
func Distance(d int64) string {
	if d == bellmanford.Infinite {
		return "INF"
	}

	return fmt.Sprint(d)
}

// Distances writes the shortest-path table "v\t\td".
func Distances(w io.Writer, res *bellmanford.Result) error {
	if _, err := fmt.Fprintln(w, "Vertex Distance from Source"); err != nil {
		return err
	}
	for v, d := range res.Dist {
		if _, err := fmt.Fprintf(w, "%d\t\t%s\n", v, Distance(d)); err != nil {
			return err
		}
	}

	return nil
}

// NegativeCycle writes the negative-cycle notice in place of a distance table.
func NegativeCycle(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Graph contains a negative weight cycle")
	return err
}
