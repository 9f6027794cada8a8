// SPDX-License-Identifier: MIT

package api

import "github.com/katalvlaran/costflow/core"

// EdgeJSON is one declared edge of a request graph.
type EdgeJSON struct {
	From     int   `json:"from"`
	To       int   `json:"to"`
	Capacity int64 `json:"capacity"`
	Cost     int64 `json:"cost"`
}

// GraphJSON is the graph part shared by every request body.
type GraphJSON struct {
	Vertices int        `json:"vertices"`
	Edges    []EdgeJSON `json:"edges"`
}

func (g GraphJSON) coreEdges() []core.Edge {
	edges := make([]core.Edge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = core.Edge{From: e.From, To: e.To, Capacity: e.Capacity, Cost: e.Cost}
	}
	return edges
}

// SolveRequest is the JSON body for POST /api/v1/solve. A missing sink
// selects the last vertex.
type SolveRequest struct {
	GraphJSON
	Source     int  `json:"source"`
	Sink       *int `json:"sink,omitempty"`
	CycleCheck bool `json:"cycle_check"`
}

// PathsRequest is the JSON body for POST /api/v1/shortest-paths.
type PathsRequest struct {
	GraphJSON
	Source int `json:"source"`
}

// The solve response is report.SolveDoc and the shortest-paths response is
// report.PathsDoc, both with ID set.

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Cycle   []int  `json:"cycle,omitempty"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
