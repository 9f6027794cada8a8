// SPDX-License-Identifier: MIT

// Package api serves min-cost max-flow and shortest-path queries over HTTP.
//
// Routes:
//
//	POST /api/v1/solve           SolveRequest → report.SolveDoc
//	POST /api/v1/shortest-paths  PathsRequest → report.PathsDoc
//	GET  /api/v1/health          HealthResponse
//
// Errors are ErrorResponse bodies: 400 invalid_request, 422 invalid_graph or
// negative_cycle, 503 when more than MaxConcurrent requests are in flight.
// Every request solves on its own network; nothing is shared between requests.
package api
