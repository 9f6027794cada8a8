// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/costflow/bellmanford"
	"github.com/katalvlaran/costflow/core"
	"github.com/katalvlaran/costflow/flow"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})
}

// PathsTable renders the augmentation log.
func PathsTable(paths []flow.Path) string {
	t := newTable("#", "Path", "Flow", "Cost")
	for i, p := range paths {
		t.Row(fmt.Sprint(i+1), joinInts(p.Vertices, " → "), fmt.Sprint(p.Flow), fmt.Sprint(p.Cost))
	}

	return t.String()
}

// FlowTable renders the per-edge flow of a solve.
func FlowTable(nw *core.Network, res *flow.Result) string {
	t := newTable("Edge", "Flow", "Capacity", "Cost")
	for _, e := range EdgeFlows(nw, res) {
		c, _ := nw.Capacity(e.From, e.To)
		t.Row(fmt.Sprintf("%d → %d", e.From, e.To), fmt.Sprint(e.Flow), fmt.Sprint(c), fmt.Sprint(e.Cost))
	}

	return t.String()
}

// SolveTable renders a titled summary, the path log and the edge flows.
func SolveTable(name string, nw *core.Network, res *flow.Result) string {
	title := styleTitle.Render(fmt.Sprintf("%s  flow=%d  cost=%d  scaled=%d",
		name, res.TotalFlow, res.TotalCost, res.ScaledCost))

	return lipgloss.JoinVertical(lipgloss.Left, title, PathsTable(res.Paths), FlowTable(nw, res))
}

// DistancesTable renders a shortest-path result.
func DistancesTable(res *bellmanford.Result) string {
	t := newTable("Vertex", "Distance", "Pred")
	for v, d := range res.Dist {
		pred := "-"
		if p := res.Pred[v]; p != bellmanford.NoVertex {
			pred = fmt.Sprint(p)
		}
		t.Row(fmt.Sprint(v), Distance(d), pred)
	}

	return t.String()
}

func joinInts(vs []int, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, sep)
}
