// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major int64 storage used by the
// residual network store.
//
// Every vertex-pair quantity of a flow network (capacity, residual capacity,
// edge cost, flow) lives in an n×n Dense:
//
//   - NewDense / NewSquare allocate zero-filled buffers.
//   - At / Set / Add are bounds-checked and return sentinel errors.
//   - Row exposes a shared-storage view for tight relaxation loops.
//   - Sub / Clamp / Mask derive flow matrices; RowSum / ColSum check conservation.
//
// Determinism: all loops are row-major (i ascending, then j ascending); there
// is no map iteration anywhere in the package.
package matrix
