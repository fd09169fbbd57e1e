// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minila/matrix"
)

func TestVector_Accessors(t *testing.T) {
	t.Parallel()
	v, err := matrix.NewVector[float64](3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Dim())

	require.NoError(t, v.Set(3, 7))
	got, err := v.At(3)
	require.NoError(t, err)
	require.Equal(t, 7.0, got)
	require.Equal(t, []float64{0, 0, 7}, v.Data())

	for _, k := range []int{0, 4, -1} {
		_, err = v.At(k)
		require.True(t, errors.Is(err, matrix.ErrIndexOutOfRange), "k=%d", k)
		require.True(t, errors.Is(v.Set(k, 1), matrix.ErrIndexOutOfRange), "k=%d", k)
	}

	_, err = matrix.NewVector[float64](-1)
	require.True(t, errors.Is(err, matrix.ErrInvalidShape))
}

func TestVector_Arithmetic(t *testing.T) {
	t.Parallel()
	a := matrix.NewVectorFrom([]float64{1, 2, 3})
	b := matrix.NewVectorFrom([]float64{4, 5, 6})

	s, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, s.Data())
	d, err := s.Sub(b)
	require.NoError(t, err)
	require.True(t, d.Equal(a))
	require.Equal(t, []float64{2, 4, 6}, a.Scale(2).Data())

	_, err = a.Add(matrix.NewVectorFrom([]float64{1}))
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
	_, err = a.Sub(nil)
	require.True(t, errors.Is(err, matrix.ErrNilArray))
}

func TestVectorFromArray(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewArrayFrom(matrix.Shape{2}, []float64{1, 2})
	require.NoError(t, err)
	v, err := matrix.VectorFromArray(a)
	require.NoError(t, err)
	require.Equal(t, 2, v.Dim())

	m, err := matrix.NewArray[float64](2, 2)
	require.NoError(t, err)
	_, err = matrix.VectorFromArray(m)
	require.True(t, errors.Is(err, matrix.ErrRankMismatch))
}

func TestVector_CopySemantics(t *testing.T) {
	t.Parallel()
	a := matrix.NewVectorFrom([]float64{1, 2})
	c := a.Clone()
	require.NoError(t, c.Set(1, 9))
	require.Equal(t, []float64{1, 2}, a.Data())

	dst := matrix.NewVectorFrom([]float64{0})
	require.NoError(t, dst.CopyFrom(a))
	require.True(t, dst.Equal(a))
	require.Equal(t, "[1, 2]", a.String())
}
