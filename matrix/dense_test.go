// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costflow/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfRange ensures At(), Set() and Add() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Add(0, -1, 1), matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetAddAt validates Set()/Add() followed by At() on valid indices.
func TestSetAddAt(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7))
	require.NoError(t, m.Add(1, 2, -3))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(4), v)
}

// TestRowSharesStorage checks that Row is a view and not a copy.
func TestRowSharesStorage(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Len(t, row, 3)
	row[2] = 9

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(9), v)
}

// TestCloneIsIndependent ensures Clone performs a deep copy.
func TestCloneIsIndependent(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 5))

	c := m.Clone()
	require.True(t, matrix.Equal(m, c))

	require.NoError(t, c.Set(0, 1, 6))
	v, _ := m.At(0, 1)
	require.Equal(t, int64(5), v, "original must not change")
	require.False(t, matrix.Equal(m, c))
}

// TestCopyFrom covers CopyFrom success and shape mismatch.
func TestCopyFrom(t *testing.T) {
	a, _ := matrix.NewSquare(2)
	b, _ := matrix.NewSquare(2)
	require.NoError(t, b.Set(1, 1, 3))

	require.NoError(t, a.CopyFrom(b))
	require.True(t, matrix.Equal(a, b))

	c, _ := matrix.NewSquare(3)
	require.ErrorIs(t, a.CopyFrom(c), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.CopyFrom(nil), matrix.ErrNilMatrix)
}

// TestString checks the bracketed row-per-line rendering.
func TestString(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 1, 5)
	_ = m.Set(1, 0, -2)

	require.Equal(t, "[0, 5]\n[-2, 0]\n", m.String())
}

// TestNilReceivers verifies that nil matrices report ErrNilMatrix instead of panicking.
func TestNilReceivers(t *testing.T) {
	var m *matrix.Dense

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
	require.Nil(t, m.Clone())
	require.Equal(t, int64(0), m.Sum())
	require.True(t, matrix.Equal(nil, nil))
}
