// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for arrays, vectors and matrices.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minila/matrix"
)

// MustMatrix builds an r×c matrix from row-major values or fails the test.
func MustMatrix[T matrix.Float](t testing.TB, r, c int, vals ...T) *matrix.Matrix[T] {
	t.Helper()
	if len(vals) == 0 {
		m, err := matrix.NewMatrix[T](r, c)
		require.NoError(t, err)
		return m
	}
	m, err := matrix.NewMatrixFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustAt reads M(i,j) or fails the test.
func MustAt[T matrix.Float](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandMatrix fills an r×c matrix with small integers in [-5, 5] from seed.
// Integer entries keep products exact in both precisions.
func RandMatrix[T matrix.Float](t testing.TB, r, c int, seed int64) *matrix.Matrix[T] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]T, r*c)
	for i := range vals {
		vals[i] = T(rng.Intn(11) - 5)
	}

	return MustMatrix(t, r, c, vals...)
}

// RandUniform fills an r×c matrix with uniform values in [-1, 1) from seed.
func RandUniform(t testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustMatrix(t, r, c, vals...)
}

// CompareExact asserts m equals the literal rows element-for-element.
func CompareExact[T matrix.Float](t testing.TB, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols of row %d", i+1)
		for j, w := range row {
			require.Equalf(t, w, MustAt(t, m, i+1, j+1), "m(%d,%d)", i+1, j+1)
		}
	}
}
