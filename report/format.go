// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/costflow/bellmanford"
	"github.com/katalvlaran/costflow/core"
	"github.com/katalvlaran/costflow/flow"
)

// Format selects an output rendering.
type Format string

// Supported formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatDOT   Format = "dot"
)

// ErrUnknownFormat is returned for a format name outside Formats().
var ErrUnknownFormat = errors.New("report: unknown format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatYAML, FormatDOT}
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// WriteSolve renders one solve in format f.
func WriteSolve(w io.Writer, f Format, name string, nw *core.Network, res *flow.Result, opts TextOptions) error {
	switch f {
	case FormatText:
		return Solve(w, name, nw, res, opts)
	case FormatTable:
		_, err := fmt.Fprintln(w, SolveTable(name, nw, res))
		return err
	case FormatJSON:
		return WriteJSON(w, NewSolveDoc(name, nw, res))
	case FormatYAML:
		return WriteYAML(w, NewSolveDoc(name, nw, res))
	case FormatDOT:
		_, err := io.WriteString(w, ToDOT(name, nw, res))
		return err
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// WritePaths renders a shortest-path outcome in format f. runErr is the
// error returned by bellmanford.ShortestPaths: a negative cycle is rendered
// as a result, any other error is returned unchanged.
func WritePaths(w io.Writer, f Format, name string, source int, res *bellmanford.Result, runErr error) error {
	var nce bellmanford.NegativeCycleError
	cycle := errors.As(runErr, &nce)
	if runErr != nil && !cycle {
		return runErr
	}

	switch f {
	case FormatText, FormatDOT:
		if cycle {
			return NegativeCycle(w)
		}
		return Distances(w, res)
	case FormatTable:
		if cycle {
			return NegativeCycle(w)
		}
		_, err := fmt.Fprintln(w, DistancesTable(res))
		return err
	case FormatJSON, FormatYAML:
		var doc PathsDoc
		if cycle {
			doc = NewCycleDoc(name, source, nce)
		} else {
			doc = NewPathsDoc(name, res)
		}
		if f == FormatJSON {
			return WriteJSON(w, doc)
		}
		return WriteYAML(w, doc)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}
