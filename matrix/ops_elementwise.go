// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels over Dense used to derive flow matrices from
//     capacity/residual pairs.
//
// Determinism & Performance:
//   - Fixed loop order (flat 0..n-1 over the row-major buffer).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "fmt"

// matrixErrorf attaches an operation tag to err, preserving the sentinel.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}

// sameShape validates that a and b are non-nil and equally shaped.
func sameShape(op string, a, b *Dense) error {
	if a == nil || b == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return matrixErrorf(op, ErrDimensionMismatch)
	}

	return nil
}

// Sub returns out = a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) {
	if err := sameShape("Sub", a, b); err != nil {
		return nil, err
	}
	out := &Dense{r: a.r, c: a.c, data: make([]int64, len(a.data))}
	for k := range a.data {
		out.data[k] = a.data[k] - b.data[k]
	}

	return out, nil
}

// Clamp returns a copy of m with every cell clamped into [lo, hi].
// When hi < lo the result is ill-defined; callers must pass lo <= hi.
func Clamp(m *Dense, lo, hi int64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("Clamp", ErrNilMatrix)
	}
	out := m.Clone()
	for k, v := range out.data {
		switch {
		case v < lo:
			out.data[k] = lo
		case v > hi:
			out.data[k] = hi
		}
	}

	return out, nil
}

// Mask returns out[i,j] = m[i,j] where keep(i, j) holds and 0 elsewhere.
// Iteration is row-major so keep observes (i, j) in ascending order.
func Mask(m *Dense, keep func(i, j int) bool) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("Mask", ErrNilMatrix)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]int64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if keep(i, j) {
				out.data[base+j] = m.data[base+j]
			}
		}
	}

	return out, nil
}

// Sum returns the sum of all cells.
func (m *Dense) Sum() int64 {
	if m == nil {
		return 0
	}
	var total int64
	for _, v := range m.data {
		total += v
	}

	return total
}

// RowSum returns the sum of row i (outflow of vertex i in a flow matrix).
func (m *Dense) RowSum(i int) (int64, error) {
	row, err := m.Row(i)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, v := range row {
		total += v
	}

	return total, nil
}

// ColSum returns the sum of column j (inflow of vertex j in a flow matrix).
func (m *Dense) ColSum(j int) (int64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if j < 0 || j >= m.c {
		return 0, denseErrorf("ColSum", 0, j, ErrOutOfRange)
	}
	var total int64
	for i := 0; i < m.r; i++ {
		total += m.data[i*m.c+j]
	}

	return total, nil
}
