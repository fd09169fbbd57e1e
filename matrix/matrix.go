// SPDX-License-Identifier: MIT

// Package matrix - rank-2 facade over Array.
//
// What & Why:
//
//	Matrix adds named extents (Rows/Cols) and 1-based (row, col) accessors on top
//	of a rank-2 Array. M(i,j) maps to the row-major offset (i-1)*cols + (j-1).
//	Storage, copying and elementwise arithmetic are delegated to the Array, so
//	shape mismatches fail identically at both levels.
//
// Complexity:
//
//	Rows/Cols/At/Set run in O(1). Clone, Add, Sub, Scale and Transpose run in O(rows*cols).
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a dense row-major rows×cols matrix with 1-based indexing.
type Matrix[T Float] struct {
	arr *Array[T]
}

var _ fmt.Stringer = (*Matrix[float64])(nil)

// matrixErrorf wraps an error with Matrix method context and 1-based coordinates.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// NewMatrix returns a zero rows×cols matrix.
// Errors: ErrInvalidShape for negative extents or an overflowing element count.
// Complexity: O(rows*cols).
func NewMatrix[T Float](rows, cols int) (*Matrix[T], error) {
	a, err := NewArray[T](rows, cols)
	if err != nil {
		return nil, err
	}

	return &Matrix[T]{arr: a}, nil
}

// NewMatrixFrom copies row-major values into a new rows×cols matrix.
// Errors: ErrInvalidShape, ErrDimensionMismatch when len(values) != rows*cols.
func NewMatrixFrom[T Float](rows, cols int, values []T) (*Matrix[T], error) {
	a, err := NewArrayFrom(Shape{rows, cols}, values)
	if err != nil {
		return nil, err
	}

	return &Matrix[T]{arr: a}, nil
}

// MatrixFromArray adapts a rank-2 array into a Matrix (deep copy).
// Errors: ErrNilArray, ErrRankMismatch when a.Rank() != 2.
func MatrixFromArray[T Float](a *Array[T]) (*Matrix[T], error) {
	if err := ValidateRank(a, 2); err != nil {
		return nil, fmt.Errorf("MatrixFromArray: %w", err)
	}

	return &Matrix[T]{arr: a.Clone()}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.arr.shape[0] }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.arr.shape[1] }

// Dims packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Dims() (rows, cols int) { return m.arr.shape[0], m.arr.shape[1] }

// Array returns a deep copy of the rank-2 storage; reshaping the copy leaves m intact.
func (m *Matrix[T]) Array() *Array[T] { return m.arr.Clone() }

// Data returns the raw row-major buffer for collaborators and backends.
func (m *Matrix[T]) Data() []T { return m.arr.data }

// indexOf bounds-checks 1-based (i,j) and returns the flat offset.
func (m *Matrix[T]) indexOf(i, j int) (int, error) {
	r, c := m.Dims()
	if i < 1 || i > r || j < 1 || j > c {
		return 0, ErrIndexOutOfRange
	}

	return (i-1)*c + (j - 1), nil
}

// At returns M(i,j) with 1 <= i <= Rows(), 1 <= j <= Cols().
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) At(i, j int) (T, error) {
	off, err := m.indexOf(i, j)
	if err != nil {
		return 0, matrixErrorf(ctxAt, i, j, err)
	}

	return m.arr.data[off], nil
}

// Set assigns M(i,j) = v. Other elements are untouched.
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) Set(i, j int, v T) error {
	off, err := m.indexOf(i, j)
	if err != nil {
		return matrixErrorf(ctxSet, i, j, err)
	}
	m.arr.data[off] = v

	return nil
}

// Row returns a copy of row i as a Vector.
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) Row(i int) (*Vector[T], error) {
	if i < 1 || i > m.Rows() {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrIndexOutOfRange)
	}
	c := m.Cols()

	return NewVectorFrom(m.arr.data[(i-1)*c : i*c]), nil
}

// Col returns a copy of column j as a Vector.
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) Col(j int) (*Vector[T], error) {
	r, c := m.Dims()
	if j < 1 || j > c {
		return nil, fmt.Errorf("Matrix.Col(%d): %w", j, ErrIndexOutOfRange)
	}
	out := make([]T, r)
	for i := 0; i < r; i++ {
		out[i] = m.arr.data[i*c+j-1]
	}

	return NewVectorFrom(out), nil
}

// Add returns m + b. Errors: ErrNilArray, ErrDimensionMismatch.
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	if b == nil {
		return nil, fmt.Errorf("Matrix.Add: %w", ErrNilArray)
	}
	r, err := m.arr.Add(b.arr)
	if err != nil {
		return nil, fmt.Errorf("Matrix.Add: %w", err)
	}

	return &Matrix[T]{arr: r}, nil
}

// Sub returns m - b. Errors: ErrNilArray, ErrDimensionMismatch.
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	if b == nil {
		return nil, fmt.Errorf("Matrix.Sub: %w", ErrNilArray)
	}
	r, err := m.arr.Sub(b.arr)
	if err != nil {
		return nil, fmt.Errorf("Matrix.Sub: %w", err)
	}

	return &Matrix[T]{arr: r}, nil
}

// Scale returns alpha*m.
func (m *Matrix[T]) Scale(alpha T) *Matrix[T] { return &Matrix[T]{arr: m.arr.Scale(alpha)} }

// Transpose returns a new transposed matrix mᵀ.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	r, c := m.Dims()
	s := Shape{c, r}
	buf := make([]T, len(m.arr.data))
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			buf[j*r+i] = m.arr.data[base+j]
		}
	}

	return &Matrix[T]{arr: &Array[T]{shape: s, strides: s.strides(), data: buf}}
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] { return &Matrix[T]{arr: m.arr.Clone()} }

// CopyFrom assigns a deep copy of b to m; m = m is a no-op.
func (m *Matrix[T]) CopyFrom(b *Matrix[T]) error {
	if b == nil {
		return fmt.Errorf("Matrix.CopyFrom: %w", ErrNilArray)
	}

	return m.arr.CopyFrom(b.arr)
}

// Equal reports identical shape and elements.
func (m *Matrix[T]) Equal(b *Matrix[T]) bool {
	if m == nil || b == nil {
		return m == b
	}

	return m.arr.Equal(b.arr)
}

// String renders one bracketed row per line: "[1, 2]\n[3, 4]\n".
func (m *Matrix[T]) String() string {
	var b strings.Builder
	r, c := m.Dims()
	var i, j, base int
	for i = 0; i < r; i++ {
		b.WriteString(_fmtOpen)
		base = i * c
		for j = 0; j < c; j++ {
			fmt.Fprintf(&b, "%g", m.arr.data[base+j])
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtClose)
		b.WriteString(_fmtRowNL)
	}

	return b.String()
}
