// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column/row statistics over a Matrix treated as an observation table
//     (rows = observations, columns = variables), e.g. an ensemble of sampled paths.
//   - Build covariance as a composition of canonical kernels (Transpose, engine Mul, Scale),
//     so either multiply engine can be plugged in.
//
// Exposed API:
//   - ColumnMeans(X)     -> means          // Σ_i X(i,j) / rows
//   - RowMeans(X)        -> means          // Σ_j X(i,j) / cols
//   - CenterColumns(X)   -> (Xc, means)    // subtract per-column mean
//   - CenterRows(X)      -> (Xc, means)    // subtract per-row mean
//   - Covariance(e, X)   -> (Cov, means)   // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal over the row-major buffer; no At/Set in loops.

package matrix

import "fmt"

const (
	opColumnMeans   = "ColumnMeans"
	opRowMeans      = "RowMeans"
	opCenterColumns = "CenterColumns"
	opCenterRows    = "CenterRows"
	opCovariance    = "Covariance"
)

// ColumnMeans returns the per-column average of a non-empty X.
// Errors: ErrNilArray, ErrInvalidShape for a zero extent.
// Complexity: O(r*c).
func ColumnMeans[T Float](x *Matrix[T]) (*Vector[T], error) {
	if err := ValidateNonEmpty(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opColumnMeans, err)
	}
	r, c := x.Dims()
	sums := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			sums[j] += float64(x.arr.data[base+j])
		}
	}

	return meansOf[T](sums, r), nil
}

// RowMeans returns the per-row average of a non-empty X.
// Errors: ErrNilArray, ErrInvalidShape for a zero extent.
// Complexity: O(r*c).
func RowMeans[T Float](x *Matrix[T]) (*Vector[T], error) {
	if err := ValidateNonEmpty(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opRowMeans, err)
	}
	r, c := x.Dims()
	sums := make([]float64, r)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			sums[i] += float64(x.arr.data[base+j])
		}
	}

	return meansOf[T](sums, c), nil
}

// meansOf divides float64 sums by n and narrows into a new vector.
func meansOf[T Float](sums []float64, n int) *Vector[T] {
	out := make([]T, len(sums))
	for k, s := range sums {
		out[k] = T(s / float64(n))
	}

	return NewVectorFrom(out)
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: compute ColumnMeans (validates X).
//   - Stage 2: broadcast-subtract the means over rows into a fresh copy.
//
// Returns:
//   - centered copy (r×c) and the column means (len c).
//
// Errors:
//   - ErrNilArray, ErrInvalidShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns[T Float](x *Matrix[T]) (*Matrix[T], *Vector[T], error) {
	means, err := ColumnMeans(x)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCenterColumns, err)
	}
	xc := x.Clone()
	r, c := xc.Dims()
	mu := means.Data()
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			xc.arr.data[base+j] -= mu[j]
		}
	}

	return xc, means, nil
}

// CenterRows subtracts the per-row mean from every element.
// Errors: ErrNilArray, ErrInvalidShape.
// Complexity: O(r*c).
func CenterRows[T Float](x *Matrix[T]) (*Matrix[T], *Vector[T], error) {
	means, err := RowMeans(x)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCenterRows, err)
	}
	xc := x.Clone()
	r, c := xc.Dims()
	mu := means.Data()
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			xc.arr.data[base+j] -= mu[i]
		}
	}

	return xc, means, nil
}

// Covariance returns the sample covariance of the columns of X.
// Implementation:
//   - Stage 1: validate r >= 2 (a sample covariance needs two observations).
//   - Stage 2: center columns.
//   - Stage 3: Cov = (Xcᵀ·Xc)/(r-1) using e for the product.
//
// Errors:
//   - ErrNilArray, ErrInvalidShape, ErrDimensionMismatch (r < 2), engine errors.
//
// Complexity:
//   - Time O(r*c²) with the reference engine, Space O(c²).
func Covariance[T Float](e Multiplier[T], x *Matrix[T]) (*Matrix[T], *Vector[T], error) {
	if err := ValidateNonEmpty(x); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCovariance, err)
	}
	if x.Rows() < 2 {
		return nil, nil, fmt.Errorf("%s: %d observations: %w", opCovariance, x.Rows(), ErrDimensionMismatch)
	}
	xc, means, err := CenterColumns(x)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCovariance, err)
	}
	g, err := e.Mul(xc.Transpose(), xc)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCovariance, err)
	}

	return g.Scale(1 / T(x.Rows()-1)), means, nil
}
