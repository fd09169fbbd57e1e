// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Vector is a rank-1 Array with 1-based external indexing: v(k) -> offset k-1.
// Storage, copying and elementwise arithmetic are delegated to the Array.
type Vector[T Float] struct {
	arr *Array[T]
}

var _ fmt.Stringer = (*Vector[float64])(nil)

// NewVector returns a zero vector of the given dimension (dim >= 0).
// Errors: ErrInvalidShape for negative dim.
func NewVector[T Float](dim int) (*Vector[T], error) {
	a, err := NewArray[T](dim)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{arr: a}, nil
}

// NewVectorFrom copies values into a new vector of dimension len(values).
func NewVectorFrom[T Float](values []T) *Vector[T] {
	buf := make([]T, len(values))
	copy(buf, values)
	s := Shape{len(values)}

	return &Vector[T]{arr: &Array[T]{shape: s, strides: s.strides(), data: buf}}
}

// VectorFromArray adapts a rank-1 array into a Vector (deep copy).
// Errors: ErrNilArray, ErrRankMismatch when a.Rank() != 1.
func VectorFromArray[T Float](a *Array[T]) (*Vector[T], error) {
	if err := ValidateRank(a, 1); err != nil {
		return nil, fmt.Errorf("VectorFromArray: %w", err)
	}

	return &Vector[T]{arr: a.Clone()}, nil
}

// Dim returns the extent of the single axis.
func (v *Vector[T]) Dim() int { return v.arr.shape[0] }

// Array returns a deep copy of the rank-1 storage; reshaping the copy leaves v intact.
func (v *Vector[T]) Array() *Array[T] { return v.arr.Clone() }

// Data returns the raw buffer (pointer + length view) for collaborators.
func (v *Vector[T]) Data() []T { return v.arr.data }

// At returns v(k), 1 <= k <= Dim().
// Errors: ErrIndexOutOfRange.
func (v *Vector[T]) At(k int) (T, error) {
	if k < 1 || k > v.Dim() {
		return 0, fmt.Errorf("Vector.At(%d): %w", k, ErrIndexOutOfRange)
	}

	return v.arr.data[k-1], nil
}

// Set assigns v(k) = x, 1 <= k <= Dim().
// Errors: ErrIndexOutOfRange.
func (v *Vector[T]) Set(k int, x T) error {
	if k < 1 || k > v.Dim() {
		return fmt.Errorf("Vector.Set(%d): %w", k, ErrIndexOutOfRange)
	}
	v.arr.data[k-1] = x

	return nil
}

// Add returns v + w. Errors: ErrNilArray, ErrDimensionMismatch.
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	if w == nil {
		return nil, fmt.Errorf("Vector.Add: %w", ErrNilArray)
	}
	r, err := v.arr.Add(w.arr)
	if err != nil {
		return nil, fmt.Errorf("Vector.Add: %w", err)
	}

	return &Vector[T]{arr: r}, nil
}

// Sub returns v - w. Errors: ErrNilArray, ErrDimensionMismatch.
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	if w == nil {
		return nil, fmt.Errorf("Vector.Sub: %w", ErrNilArray)
	}
	r, err := v.arr.Sub(w.arr)
	if err != nil {
		return nil, fmt.Errorf("Vector.Sub: %w", err)
	}

	return &Vector[T]{arr: r}, nil
}

// Scale returns alpha*v.
func (v *Vector[T]) Scale(alpha T) *Vector[T] { return &Vector[T]{arr: v.arr.Scale(alpha)} }

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] { return &Vector[T]{arr: v.arr.Clone()} }

// CopyFrom assigns a deep copy of w to v; v = v is a no-op.
func (v *Vector[T]) CopyFrom(w *Vector[T]) error {
	if w == nil {
		return fmt.Errorf("Vector.CopyFrom: %w", ErrNilArray)
	}

	return v.arr.CopyFrom(w.arr)
}

// Equal reports identical dimension and elements.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if v == nil || w == nil {
		return v == w
	}

	return v.arr.Equal(w.arr)
}

// String renders "[1, 2, 3]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for k, x := range v.arr.data {
		if k > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
