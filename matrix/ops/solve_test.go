// SPDX-License-Identifier: MIT
package ops_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minila/matrix"
	"github.com/katalvlaran/minila/matrix/ops"
)

func TestSolve(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{2, 1}, {1, 3}})
	b := mustRows(t, [][]float64{{3, 1}, {5, 2}})
	aBefore, bBefore := a.Clone(), b.Clone()

	x, err := ops.Solve(a, b)
	require.NoError(t, err)
	requireClose(t, b, mustMul(t, a, x), 1e-12)
	require.True(t, a.Equal(aBefore))
	require.True(t, b.Equal(bBefore))
}

func TestSolveVector(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{4, -2, 1}, {-2, 4, -2}, {1, -2, 4}})
	b := matrix.NewVectorFrom([]float64{11, -16, 17})

	x, err := ops.SolveVector(a, b)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, -2, 3}, x.Data(), 1e-12)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()
	sq := mustRows(t, [][]float64{{1, 2}, {2, 4}})
	wide := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rhs3 := mustRows(t, [][]float64{{1}, {2}, {3}})
	rhs2 := mustRows(t, [][]float64{{1}, {2}})

	tests := []struct {
		name string
		a, b *matrix.Matrix[float64]
		want error
	}{
		{"singular", sq, rhs2, ops.ErrSingular},
		{"non-square", wide, rhs2, matrix.ErrDimensionMismatch},
		{"rhs rows", sq, rhs3, matrix.ErrDimensionMismatch},
		{"nil rhs", sq, nil, matrix.ErrNilArray},
		{"nil system", nil, rhs2, matrix.ErrNilArray},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ops.Solve(tc.a, tc.b)
			require.Truef(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := ops.Inverse(a)
	require.NoError(t, err)
	want := mustRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	requireClose(t, want, inv, 1e-12)

	eye, _ := matrix.NewIdentity[float64](2)
	requireClose(t, eye, mustMul(t, a, inv), 1e-12)

	_, err = ops.Inverse(mustRows(t, [][]float64{{1, 1}, {1, 1}}))
	require.True(t, errors.Is(err, ops.ErrSingular))
}
