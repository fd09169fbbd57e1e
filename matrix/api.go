// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors and comparisons on top of
//     Array/Vector/Matrix.
//   - Avoid logic duplication: each facade delegates to the canonical constructor.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero rows×cols matrix. Alias of NewMatrix.
func NewZeros[T Float](rows, cols int) (*Matrix[T], error) { return NewMatrix[T](rows, cols) }

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike[T Float](m *Matrix[T]) (*Matrix[T], error) {
	if m == nil {
		return nil, fmt.Errorf("ZerosLike: %w", ErrNilArray)
	}

	return NewMatrix[T](m.Rows(), m.Cols())
}

// NewIdentity returns I_n.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Float](n int) (*Matrix[T], error) {
	I, err := NewMatrix[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.arr.data[i*n+i] = 1
	}

	return I, nil
}

// NewFromRows builds a matrix from a slice of equally long rows (copied).
// Errors: ErrDimensionMismatch for ragged rows.
func NewFromRows[T Float](rows [][]T) (*Matrix[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	buf := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		buf = append(buf, row...)
	}

	return NewMatrixFrom(r, c, buf)
}

// ---------- Numeric compare ----------

// AllClose reports |a-b| <= atol + rtol*|b| elementwise for identical shapes.
// NaN never compares close; equal infinities do.
// Errors: ErrNilArray, ErrDimensionMismatch.
// Complexity: O(n).
func AllClose[T Float](a, b *Array[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	var x, y float64
	for i := range a.data {
		x, y = float64(a.data[i]), float64(b.data[i])
		if x == y {
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}

// MatricesClose is AllClose on two matrices.
func MatricesClose[T Float](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("MatricesClose: %w", ErrNilArray)
	}

	return AllClose(a.arr, b.arr, rtol, atol)
}

// VectorsClose is AllClose on two vectors.
func VectorsClose[T Float](a, b *Vector[T], rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("VectorsClose: %w", ErrNilArray)
	}

	return AllClose(a.arr, b.arr, rtol, atol)
}
