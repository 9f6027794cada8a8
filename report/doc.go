// SPDX-License-Identifier: MIT

// Package report renders solve and shortest-path results.
//
// Formats:
//
//   - text:  the classic console report (Solve, Distances, NegativeCycle).
//     Matrices print as "%5d" grids, paths as "[0, 2, 3](3) $1", edge flows as
//     "Flow 0 -> 2 (3) $ 1".
//   - table: lipgloss tables (SolveTable, DistancesTable) for terminals.
//   - json / yaml: SolveDoc and PathsDoc via WriteJSON / WriteYAML.
//   - dot:   ToDOT, and RenderSVG through the embedded Graphviz.
//
// Report functions only read the network and result they are given.
package report
