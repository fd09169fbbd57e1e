// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minila/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched shapes.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	arr := func(shape ...int) *matrix.Array[float64] {
		a, err := matrix.NewArray[float64](shape...)
		require.NoError(t, err)
		return a
	}

	tests := []struct {
		name    string
		a, b    *matrix.Array[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilArray},
		{"first nil", nil, arr(2, 2), matrix.ErrNilArray},
		{"second nil", arr(2, 2), nil, matrix.ErrNilArray},
		{"equal 2x3", arr(2, 3), arr(2, 3), nil},
		{"row mismatch", arr(2, 3), arr(3, 3), matrix.ErrDimensionMismatch},
		{"rank mismatch", arr(6), arr(2, 3), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateProducts covers the dot/mat-vec/vec-mat/mat-mat compatibility rules.
func TestValidateProducts(t *testing.T) {
	t.Parallel()

	m23 := MustMatrix[float64](t, 2, 3)
	m32 := MustMatrix[float64](t, 3, 2)
	v2 := matrix.NewVectorFrom([]float64{1, 2})
	v3 := matrix.NewVectorFrom([]float64{1, 2, 3})

	require.NoError(t, matrix.ValidateDotCompatible(v2, v2))
	require.True(t, errors.Is(matrix.ValidateDotCompatible(v2, v3), matrix.ErrDimensionMismatch))
	require.True(t, errors.Is(matrix.ValidateDotCompatible(nil, v3), matrix.ErrNilArray))

	require.NoError(t, matrix.ValidateMatVecCompatible(m23, v3))
	require.True(t, errors.Is(matrix.ValidateMatVecCompatible(m23, v2), matrix.ErrDimensionMismatch))

	require.NoError(t, matrix.ValidateVecMatCompatible(v2, m23))
	require.True(t, errors.Is(matrix.ValidateVecMatCompatible(v3, m23), matrix.ErrDimensionMismatch))

	require.NoError(t, matrix.ValidateMulCompatible(m23, m32))
	require.True(t, errors.Is(matrix.ValidateMulCompatible(m23, m23), matrix.ErrDimensionMismatch))
	require.True(t, errors.Is(matrix.ValidateMulCompatible(nil, m23), matrix.ErrNilArray))
}

// TestValidateSquareAndNonEmpty covers the factorization guards.
func TestValidateSquareAndNonEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		m                   *matrix.Matrix[float64]
		wantSquare, wantNon error
	}{
		{"nil", nil, matrix.ErrNilArray, matrix.ErrNilArray},
		{"1x1", MustMatrix[float64](t, 1, 1), nil, nil},
		{"2x3", MustMatrix[float64](t, 2, 3), matrix.ErrDimensionMismatch, nil},
		{"0x0", MustMatrix[float64](t, 0, 0), nil, matrix.ErrInvalidShape},
		{"3x0", MustMatrix[float64](t, 3, 0), matrix.ErrDimensionMismatch, matrix.ErrInvalidShape},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			check := func(err, want error) {
				if want == nil {
					require.NoError(t, err)
					return
				}
				require.Truef(t, errors.Is(err, want), "expected errors.Is(%v, %v)", err, want)
			}
			check(matrix.ValidateSquare(tc.m), tc.wantSquare)
			check(matrix.ValidateNonEmpty(tc.m), tc.wantNon)
		})
	}
}

func TestValidateRank(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewArray[float64](2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateRank(a, 3))
	require.True(t, errors.Is(matrix.ValidateRank(a, 2), matrix.ErrRankMismatch))
	require.True(t, errors.Is(matrix.ValidateNotNil(a, nil), matrix.ErrNilArray))
}
