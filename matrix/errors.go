// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across matrix,
// matrix/naive, matrix/backend and matrix/ops. Algorithms return these
// sentinels (optionally wrapped with call-site context via %w) and tests check
// them with errors.Is. No algorithm panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Detection
// sites wrap with fmt.Errorf("Op(args): %w", ErrX); callers use errors.Is.
//
// CHECK ORDER (documented, enforced in tests):
// nil -> shape -> rank -> index -> dimension mismatch -> element kind.
// Every check runs before any delegation to the BLAS/LAPACK backend.

var (
	// ErrInvalidShape is returned for a malformed shape request: an empty
	// shape, a negative extent, an element count overflowing int, or a zero
	// extent where a factorization needs at least one row and column.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates operands whose shapes are incompatible
	// for the requested elementwise or product operation, or a value slice
	// whose length differs from the product of the shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRankMismatch indicates a wrong number of axes: an index tuple whose
	// length differs from the rank, or a Vector/Matrix built from an array of
	// rank other than 1/2.
	ErrRankMismatch = errors.New("matrix: rank mismatch")

	// ErrIndexOutOfRange indicates an axis or element index outside its range.
	// Public indexers (At/Set/Element) return this, never panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrUnsupported marks an element type the delegated backend has no
	// routine for (e.g. a named ~float64 type that is not float64 itself).
	ErrUnsupported = errors.New("matrix: unsupported element type")

	// ErrDomain indicates an argument outside the domain of a derived scalar
	// operation (arccosine of a cosine outside [-1, 1] beyond tolerance).
	ErrDomain = errors.New("matrix: argument outside function domain")

	// ErrDivideByZero indicates a degenerate denominator in a derived scalar
	// operation (cosine of a zero-magnitude vector).
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrNilArray indicates that a nil *Array, *Vector or *Matrix was used.
	ErrNilArray = errors.New("matrix: nil array")
)
