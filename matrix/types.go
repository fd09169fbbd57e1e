// SPDX-License-Identifier: MIT

// Package matrix: scalar kinds and shape descriptor.
package matrix

import (
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// singleEpsilon is the tolerance floor for float32 element kinds.
const singleEpsilon = 1e-6

// Float is the closed set of element kinds the package stores.
// The delegated backend further narrows this to exactly float32 and float64.
type Float interface {
	~float32 | ~float64
}

// isSingle reports whether T is a 32-bit float kind.
func isSingle[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Shape is the ordered sequence of per-axis extents; len(Shape) is the rank.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Equal reports exact sequence equality (same rank, same extents).
// Two shapes with the same element count but different extents are NOT equal.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for a := range s {
		if s[a] != o[a] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	cp := make(Shape, len(s))
	copy(cp, s)

	return cp
}

// String renders the shape as "(2, 3)".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteString("(")
	for a, e := range s {
		if a > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", e)
	}
	b.WriteString(")")

	return b.String()
}

// elements validates s and returns product(s).
// Errors: ErrInvalidShape for an empty shape, a negative extent, or an
// element count that would overflow int.
// Complexity: O(rank).
func (s Shape) elements() (int, error) {
	if len(s) == 0 {
		return 0, ErrInvalidShape
	}
	n, zero := 1, false
	for _, e := range s {
		if e < 0 {
			return 0, ErrInvalidShape
		}
		if e == 0 {
			zero = true
			continue
		}
		// Non-zero extents must multiply within int so that strides never wrap.
		if n > math.MaxInt/e {
			return 0, ErrInvalidShape
		}
		n *= e
	}
	if zero {
		return 0, nil
	}

	return n, nil
}

// strides returns the row-major stride of each axis: Π_{b>a} shape[b].
// Assumes s has been validated by elements().
func (s Shape) strides() []int {
	st := make([]int, len(s))
	acc := 1
	for a := len(s) - 1; a >= 0; a-- {
		st[a] = acc
		acc *= s[a]
	}

	return st
}
