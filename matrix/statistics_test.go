// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minila/matrix"
	"github.com/katalvlaran/minila/matrix/backend"
	"github.com/katalvlaran/minila/matrix/naive"
)

func TestMeansAndCentering(t *testing.T) {
	t.Parallel()
	x := MustMatrix(t, 3, 2, 1.0, 10, 2, 20, 3, 30)

	cm, err := matrix.ColumnMeans(x)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 20}, cm.Data())
	rm, err := matrix.RowMeans(x)
	require.NoError(t, err)
	require.Equal(t, []float64{5.5, 11, 16.5}, rm.Data())

	xc, _, err := matrix.CenterColumns(x)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-1, -10}, {0, 0}, {1, 10}}, xc)
	xr, _, err := matrix.CenterRows(x)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-4.5, 4.5}, {-9, 9}, {-13.5, 13.5}}, xr)

	_, err = matrix.ColumnMeans(MustMatrix[float64](t, 0, 2))
	require.True(t, errors.Is(err, matrix.ErrInvalidShape))
}

func TestCovariance(t *testing.T) {
	t.Parallel()
	x := MustMatrix(t, 3, 2, 1.0, 10, 2, 20, 3, 30)

	for name, e := range map[string]matrix.Multiplier[float64]{
		"naive":   naive.Engine[float64]{},
		"backend": backend.Engine[float64]{},
	} {
		cov, means, err := matrix.Covariance(e, x)
		require.NoError(t, err, name)
		require.Equal(t, []float64{2, 20}, means.Data(), name)
		CompareExact(t, [][]float64{{1, 10}, {10, 100}}, cov)
	}

	_, _, err := matrix.Covariance[float64](naive.Engine[float64]{}, MustMatrix(t, 1, 2, 1.0, 2))
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}
