// SPDX-License-Identifier: MIT

// Package matrix - Array storage (row-major, arbitrary rank) & safe accessors.
//
// Purpose:
//   - Provide a single owned contiguous buffer plus a shape descriptor.
//   - Compute linear offsets from multi-axis indices: offset = Σ_a idx[a] * Π_{b>a} shape[b].
//   - Guarantee safety at the public surface: At/Set/Element return errors instead of panicking.
//   - Deep-copy on construction, Clone and CopyFrom; two arrays never share a buffer.
//
// Complexity quicksheet:
//   - NewArray: O(n) zero-init; At/Set/Element: O(rank); Clone/CopyFrom/Add/Sub/Scale: O(n).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "NewArray"
	ctxFrom    = "NewArrayFrom"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxElement = "Element"
	ctxAxis    = "AxisExtent"
	ctxAdd     = "Add"
	ctxSub     = "Sub"
	ctxCopy    = "CopyFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
	_fmtRowNL = "\n"
)

// arrayErrorf wraps an error with a uniform Array context and the offending indices.
func arrayErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Array.%s%v: %w", method, idx, err)
}

// Array is a dense row-major N-dimensional array.
//   - shape holds the per-axis extents; len(data) == product(shape) always.
//   - strides caches Π_{b>a} shape[b] per axis so offsets cost O(rank).
//   - data is exclusively owned; every constructor and copy allocates afresh.
type Array[T Float] struct {
	shape   Shape
	strides []int
	data    []T
}

var _ fmt.Stringer = (*Array[float64])(nil)

// NewArray creates a zero-filled array of the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate the shape (non-empty, non-negative, product fits in int).
//   - Stage 2: allocate a zero-filled buffer of product(shape) elements.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(n), Space O(n), n = product(shape).
//
// Notes:
//   - Zero extents are legal and yield an empty buffer.
func NewArray[T Float](shape ...int) (*Array[T], error) {
	s := Shape(shape)
	n, err := s.elements()
	if err != nil {
		return nil, fmt.Errorf("%s%v: %w", ctxNew, s, err)
	}
	s = s.Clone() // never alias the caller's slice

	return &Array[T]{shape: s, strides: s.strides(), data: make([]T, n)}, nil
}

// NewArrayFrom creates an array of the given shape and copies values into it.
// MAIN DESCRIPTION:
//   - values are interpreted in row-major order and copied; the caller keeps
//     ownership of its slice.
//
// Errors:
//   - ErrInvalidShape (malformed shape).
//   - ErrDimensionMismatch (len(values) != product(shape)).
//
// Complexity:
//   - Time O(n), Space O(n).
func NewArrayFrom[T Float](shape Shape, values []T) (*Array[T], error) {
	n, err := shape.elements()
	if err != nil {
		return nil, fmt.Errorf("%s%v: %w", ctxFrom, shape, err)
	}
	if len(values) != n {
		return nil, fmt.Errorf("%s%v: %d values for %d elements: %w",
			ctxFrom, shape, len(values), n, ErrDimensionMismatch)
	}
	s := shape.Clone()
	buf := make([]T, n)
	copy(buf, values)

	return &Array[T]{shape: s, strides: s.strides(), data: buf}, nil
}

// Rank returns the number of axes.
// Complexity: O(1).
func (a *Array[T]) Rank() int { return len(a.shape) }

// Len returns the number of stored elements (product of the shape).
// Complexity: O(1).
func (a *Array[T]) Len() int { return len(a.data) }

// Shape returns a copy of the shape; mutating it does not affect a.
// Complexity: O(rank).
func (a *Array[T]) Shape() Shape { return a.shape.Clone() }

// AxisExtent returns shape[axis].
// Errors: ErrIndexOutOfRange when axis ∉ [0, rank).
// Complexity: O(1).
func (a *Array[T]) AxisExtent(axis int) (int, error) {
	if axis < 0 || axis >= len(a.shape) {
		return 0, arrayErrorf(ctxAxis, []int{axis}, ErrIndexOutOfRange)
	}

	return a.shape[axis], nil
}

// offset computes the row-major linear offset of a 0-based multi-index.
// MAIN DESCRIPTION:
//   - Validate rank first, then every axis index against its own extent.
//
// Returns:
//   - (offset, nil) or (0, ErrRankMismatch / ErrIndexOutOfRange) unwrapped;
//     public methods wrap with their method tag.
//
// Complexity:
//   - Time O(rank), Space O(1).
func (a *Array[T]) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrRankMismatch
	}
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= a.shape[ax] {
			return 0, ErrIndexOutOfRange
		}
		off += i * a.strides[ax]
	}

	return off, nil
}

// Offset exposes the linear offset of a 0-based multi-index into Data().
// Errors: ErrRankMismatch, ErrIndexOutOfRange.
func (a *Array[T]) Offset(idx ...int) (int, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, arrayErrorf("Offset", idx, err)
	}

	return off, nil
}

// At returns the element at the 0-based multi-index.
// Errors: ErrRankMismatch, ErrIndexOutOfRange.
// Complexity: O(rank).
func (a *Array[T]) At(idx ...int) (T, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, arrayErrorf(ctxAt, idx, err)
	}

	return a.data[off], nil
}

// Set stores v at the 0-based multi-index.
// Errors: ErrRankMismatch, ErrIndexOutOfRange.
// Complexity: O(rank).
func (a *Array[T]) Set(v T, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return arrayErrorf(ctxSet, idx, err)
	}
	a.data[off] = v

	return nil
}

// Element returns a pointer to the element at the 0-based multi-index.
// The pointer stays valid for the lifetime of a; it must not outlive it in
// code that relies on exclusive ownership.
// Errors: ErrRankMismatch, ErrIndexOutOfRange.
func (a *Array[T]) Element(idx ...int) (*T, error) {
	off, err := a.offset(idx)
	if err != nil {
		return nil, arrayErrorf(ctxElement, idx, err)
	}

	return &a.data[off], nil
}

// Data returns the raw row-major buffer (length Len()).
// Intended for printing/serialization collaborators and backend marshaling;
// writes through the slice mutate a.
func (a *Array[T]) Data() []T { return a.data }

// Clone returns a deep copy (new buffer, new shape).
// Complexity: O(n).
func (a *Array[T]) Clone() *Array[T] {
	cp := make([]T, len(a.data))
	copy(cp, a.data)
	s := a.shape.Clone()

	return &Array[T]{shape: s, strides: s.strides(), data: cp}
}

// CopyFrom makes a a deep copy of src (assignment semantics).
// MAIN DESCRIPTION:
//   - Self-assignment is a no-op that preserves identity.
//   - a's buffer is reused when its capacity suffices, otherwise replaced.
//
// Errors:
//   - ErrNilArray when src is nil.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if src == nil {
		return fmt.Errorf("Array.%s: %w", ctxCopy, ErrNilArray)
	}
	if a == src {
		return nil
	}
	if cap(a.data) >= len(src.data) {
		a.data = a.data[:len(src.data)]
	} else {
		a.data = make([]T, len(src.data))
	}
	copy(a.data, src.data)
	a.shape = src.shape.Clone()
	a.strides = a.shape.strides()

	return nil
}

// Add returns a new array a + b (elementwise).
// Errors: ErrNilArray, ErrDimensionMismatch when shapes are not identical.
// Complexity: O(n).
func (a *Array[T]) Add(b *Array[T]) (*Array[T], error) { return a.combine(b, +1, ctxAdd) }

// Sub returns a new array a - b (elementwise).
// Errors: ErrNilArray, ErrDimensionMismatch when shapes are not identical.
// Complexity: O(n).
func (a *Array[T]) Sub(b *Array[T]) (*Array[T], error) { return a.combine(b, -1, ctxSub) }

// combine is the shared flat kernel of Add/Sub; sign selects the operation.
func (a *Array[T]) combine(b *Array[T], sign int, op string) (*Array[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("Array.%s: %w", op, err)
	}
	res := a.Clone()
	if sign > 0 {
		for i, v := range b.data {
			res.data[i] += v
		}
	} else {
		for i, v := range b.data {
			res.data[i] -= v
		}
	}

	return res, nil
}

// Scale returns a new array alpha*a. Always defined; no shape check.
// Complexity: O(n).
func (a *Array[T]) Scale(alpha T) *Array[T] {
	res := a.Clone()
	for i := range res.data {
		res.data[i] *= alpha
	}

	return res
}

// Equal reports identical shape and exactly equal elements.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i, v := range a.data {
		if b.data[i] != v {
			return false
		}
	}

	return true
}

// String renders nested brackets following the axis structure:
// rank 1 -> "[1, 2]", rank 2 -> "[[1, 2],\n [3, 4]]".
// Not for hot paths.
func (a *Array[T]) String() string {
	var b strings.Builder
	a.render(&b, 0, 0)

	return b.String()
}

// render writes the sub-array starting at offset base along axis ax.
func (a *Array[T]) render(b *strings.Builder, ax, base int) {
	b.WriteString(_fmtOpen)
	for i := 0; i < a.shape[ax]; i++ {
		if i > 0 {
			if ax+1 < len(a.shape) {
				b.WriteString(",")
				b.WriteString(_fmtRowNL)
				b.WriteString(strings.Repeat(" ", ax+1))
			} else {
				b.WriteString(_fmtSep)
			}
		}
		off := base + i*a.strides[ax]
		if ax+1 == len(a.shape) {
			fmt.Fprintf(b, "%g", a.data[off])
		} else {
			a.render(b, ax+1, off)
		}
	}
	b.WriteString(_fmtClose)
}
