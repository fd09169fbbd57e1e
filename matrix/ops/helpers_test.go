// SPDX-License-Identifier: MIT
// Package ops_test contains shared fixtures for the factorization tests.
package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minila/matrix"
	"github.com/katalvlaran/minila/matrix/naive"
)

// mustRows builds a matrix from literal rows or fails the test.
func mustRows[T matrix.Float](t *testing.T, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustMul multiplies with the reference engine or fails the test.
func mustMul[T matrix.Float](t *testing.T, a, b *matrix.Matrix[T]) *matrix.Matrix[T] {
	t.Helper()
	c, err := naive.Mul(a, b)
	require.NoError(t, err)

	return c
}

// requireClose asserts elementwise closeness within atol.
func requireClose[T matrix.Float](t *testing.T, want, got *matrix.Matrix[T], atol float64) {
	t.Helper()
	ok, err := matrix.MatricesClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}
