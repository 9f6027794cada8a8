// SPDX-License-Identifier: MIT

// Package core defines the Network type: the residual graph store of a
// min-cost flow solve. A Network exclusively owns three n×n matrices
// (capacity, residual capacity, edge cost) indexed by vertex pair, plus a
// presence mask recording which ordered pairs were declared as edges.
//
// This file declares Edge, EdgeError, Option and the sentinel errors.
//
// Errors:
//
//	ErrBadVertexCount       - vertex count is not positive.
//	ErrInvalidEdgeEndpoint  - edge tuple references a vertex outside [0, n).
//	ErrNegativeCapacity     - edge tuple carries a negative capacity.
//	ErrCostOutOfRange       - edge cost magnitude exceeds CostLimit(n).
//	ErrVertexOutOfRange     - a query or mutation addressed a vertex outside [0, n).
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction and mutation.
var (
	// ErrBadVertexCount indicates a non-positive vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be > 0")

	// ErrInvalidEdgeEndpoint indicates that an edge references a vertex outside [0, n).
	ErrInvalidEdgeEndpoint = errors.New("core: invalid edge endpoint")

	// ErrNegativeCapacity indicates that an edge was declared with capacity < 0.
	ErrNegativeCapacity = errors.New("core: negative capacity")

	// ErrCostOutOfRange indicates an edge cost whose magnitude could overflow
	// a path distance (|cost| > CostLimit(n)).
	ErrCostOutOfRange = errors.New("core: edge cost out of range")

	// ErrVertexOutOfRange indicates that an accessor was called with a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Edge is one (from, to, capacity, cost) tuple of the graph constructor
// interface. The reverse arc (to, from) is implicit: cost -Cost, capacity 0.
type Edge struct {
	From     int   // tail vertex
	To       int   // head vertex
	Capacity int64 // original capacity (non-negative)
	Cost     int64 // cost per unit of flow (may be negative)
}

// String renders the edge as "u->v (cap $cost)".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d (%d $%d)", e.From, e.To, e.Capacity, e.Cost)
}

// EdgeError reports the offending tuple of a rejected AddEdge call.
// It matches ErrInvalidEdgeEndpoint, ErrSelfLoop, ErrNegativeCapacity or
// ErrCostOutOfRange through errors.Is.
type EdgeError struct {
	Edge        Edge
	VertexCount int
	Err         error
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("core: edge %d->%d in %d-vertex network: %v", e.Edge.From, e.Edge.To, e.VertexCount, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e EdgeError) Unwrap() error { return e.Err }

// Option configures a Network at construction time.
type Option func(*networkConfig)

// networkConfig is the resolved option set of a Network.
type networkConfig struct {
	skipInvalid bool
}

// WithSkipInvalidEdges makes AddEdge silently ignore tuples whose endpoints
// fall outside [0, n) instead of returning ErrInvalidEdgeEndpoint. Skipped
// tuples are counted and reported by Network.Skipped.
func WithSkipInvalidEdges() Option {
	return func(c *networkConfig) {
		c.skipInvalid = true
	}
}
