// SPDX-License-Identifier: MIT

package bellmanford

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil Graph was passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, VertexCount()).
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrNegativeCycle indicates that a cycle of strictly negative total cost
	// is reachable from the source, so shortest distances are undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")

	// ErrUnreachable indicates that PathTo was asked for a vertex with no
	// finite distance.
	ErrUnreachable = errors.New("bellmanford: vertex unreachable from source")
)

const (
	// Infinite is the distance sentinel of vertices not reached from the source.
	Infinite int64 = math.MaxInt64

	// NoVertex is the predecessor sentinel ("none").
	NoVertex = -1
)

// Graph is the cost-graph contract consumed by the relaxer. Vertices are
// positions in [0, VertexCount()); Arc reports the cost of u→v and whether
// that arc exists. core.ArcView satisfies it for both residual and plain views.
type Graph interface {
	VertexCount() int
	Arc(u, v int) (cost int64, ok bool)
}

// NegativeCycleError carries one negative cycle found by the guard, in
// forward order: Cycle[i]→Cycle[i+1] and Cycle[len-1]→Cycle[0] are arcs.
// Cycle is nil if the predecessor walk could not isolate it.
// It matches ErrNegativeCycle through errors.Is.
type NegativeCycleError struct {
	Cycle []int
}

func (e NegativeCycleError) Error() string {
	if len(e.Cycle) == 0 {
		return ErrNegativeCycle.Error()
	}
	parts := make([]string, 0, len(e.Cycle)+1)
	for _, v := range e.Cycle {
		parts = append(parts, fmt.Sprint(v))
	}
	parts = append(parts, fmt.Sprint(e.Cycle[0]))

	return fmt.Sprintf("%s: %s", ErrNegativeCycle, strings.Join(parts, "->"))
}

// Unwrap exposes ErrNegativeCycle for errors.Is.
func (e NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// Result holds the outcome of one relaxation run. Dist and Pred are rebuilt
// from scratch for every run and never shared between runs.
//
//	Dist[v] - best known cost from Source to v, Infinite when unreached.
//	Pred[v] - predecessor of v on that path, NoVertex when none.
type Result struct {
	Source int
	Dist   []int64
	Pred   []int
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Infinite
}

// PathTo rebuilds the vertex sequence Source→…→v from Pred.
// The walk is bounded by the vertex count; a longer chain means Pred holds a
// cycle and ErrNegativeCycle is returned.
func (r *Result) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(r.Pred) {
		return nil, fmt.Errorf("PathTo(%d): %w", v, ErrSourceOutOfRange)
	}
	if v == r.Source {
		return []int{v}, nil
	}
	if r.Pred[v] == NoVertex {
		return nil, fmt.Errorf("PathTo(%d): %w", v, ErrUnreachable)
	}

	path := []int{v}
	for cur := v; cur != r.Source; {
		cur = r.Pred[cur]
		if cur == NoVertex {
			return nil, fmt.Errorf("PathTo(%d): %w", v, ErrUnreachable)
		}
		path = append(path, cur)
		if len(path) > len(r.Pred) {
			return nil, fmt.Errorf("PathTo(%d): %w", v, ErrNegativeCycle)
		}
	}
	// Reverse into source-first order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
