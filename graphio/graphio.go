// SPDX-License-Identifier: MIT

// Package graphio reads and writes flow networks in the whitespace-separated
// integer format:
//
//	<vertexCount>
//	<from> <to> <capacity> <cost>
//	...
//
// Line breaks carry no meaning; only the token sequence counts. Source and
// sink are not part of the file: callers default them to 0 and vertexCount-1.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/costflow/core"
)

// Sentinel errors for malformed input.
var (
	// ErrMissingVertexCount indicates an empty input.
	ErrMissingVertexCount = errors.New("graphio: missing vertex count")

	// ErrBadToken indicates a token that is not a base-10 integer.
	ErrBadToken = errors.New("graphio: token is not an integer")

	// ErrTruncatedEdge indicates trailing tokens that do not form a full
	// from/to/capacity/cost quadruple.
	ErrTruncatedEdge = errors.New("graphio: truncated edge tuple")
)

// Graph is the parsed content of one graph description.
type Graph struct {
	Name     string
	Vertices int
	Edges    []core.Edge
}

// Network builds the residual store from g. Endpoint errors surface as
// core.EdgeError unless opts contains core.WithSkipInvalidEdges.
func (g *Graph) Network(opts ...core.Option) (*core.Network, error) {
	nw, err := core.FromEdges(g.Vertices, g.Edges, opts...)
	if err != nil {
		if g.Name != "" {
			return nil, fmt.Errorf("%s: %w", g.Name, err)
		}
		return nil, err
	}

	return nw, nil
}

// Read parses one graph description from r.
func Read(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	pos := 0
	next := func() (int64, bool, error) {
		if !sc.Scan() {
			return 0, false, sc.Err()
		}
		pos++
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("token %d %q: %w", pos, sc.Text(), ErrBadToken)
		}

		return v, true, nil
	}

	n, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingVertexCount
	}
	g := &Graph{Vertices: int(n)}

	for {
		var tuple [4]int64
		for i := range tuple {
			v, ok, err := next()
			if err != nil {
				return nil, err
			}
			if !ok {
				if i == 0 {
					return g, nil
				}
				return nil, fmt.Errorf("edge #%d has %d of 4 values: %w", len(g.Edges), i, ErrTruncatedEdge)
			}
			tuple[i] = v
		}
		g.Edges = append(g.Edges, core.Edge{
			From:     int(tuple[0]),
			To:       int(tuple[1]),
			Capacity: tuple[2],
			Cost:     tuple[3],
		})
	}
}

// ReadFile parses the graph stored at path; Graph.Name is the base name.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	g.Name = filepath.Base(path)

	return g, nil
}

// Write emits n and the edges in the text format, one tuple per line.
func Write(w io.Writer, n int, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", n); err != nil {
		return err
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", e.From, e.To, e.Capacity, e.Cost); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteNetwork emits the declared edges of nw in pair order.
func WriteNetwork(w io.Writer, nw *core.Network) error {
	return Write(w, nw.VertexCount(), nw.Edges())
}
