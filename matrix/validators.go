// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks shared by the
//    elementwise kernels, both multiply engines and the factorization layer.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap once more with their own operation name.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing (beyond error values).
//
// Note:
//  - Every composite validator follows a fixed sequence: NotNil -> Shape.
//  - Engines MUST call these before touching any backend so that malformed
//    calls never reach native code.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every array reference is non-nil.
// Returns ErrNilArray on the first nil argument.
// Complexity: O(k).
func ValidateNotNil[T Float](arrays ...*Array[T]) error {
	for _, a := range arrays {
		if a == nil {
			return validatorErrorf("ValidateNotNil", ErrNilArray)
		}
	}

	return nil
}

// ValidateSameShape checks non-nil operands with exactly equal shapes.
// Equal element counts with different extents are a mismatch.
// Errors: ErrNilArray, ErrDimensionMismatch.
// Complexity: O(rank).
func ValidateSameShape[T Float](a, b *Array[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if !a.shape.Equal(b.shape) {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape %v vs %v", a.shape, b.shape), ErrDimensionMismatch)
	}

	return nil
}

// ValidateRank ensures a has exactly rank axes.
// Errors: ErrNilArray, ErrRankMismatch.
func ValidateRank[T Float](a *Array[T], rank int) error {
	if a == nil {
		return validatorErrorf("ValidateRank", ErrNilArray)
	}
	if len(a.shape) != rank {
		return validatorErrorf(fmt.Sprintf("ValidateRank: want %d, got %d", rank, len(a.shape)), ErrRankMismatch)
	}

	return nil
}

// ValidateDotCompatible checks v1.Dim() == v2.Dim().
// Errors: ErrNilArray, ErrDimensionMismatch.
func ValidateDotCompatible[T Float](v1, v2 *Vector[T]) error {
	if v1 == nil || v2 == nil {
		return validatorErrorf("ValidateDotCompatible", ErrNilArray)
	}
	if v1.Dim() != v2.Dim() {
		return validatorErrorf(fmt.Sprintf("ValidateDotCompatible: %d vs %d", v1.Dim(), v2.Dim()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMatVecCompatible checks m.Cols() == v.Dim() for m·v.
// Errors: ErrNilArray, ErrDimensionMismatch.
func ValidateMatVecCompatible[T Float](m *Matrix[T], v *Vector[T]) error {
	if m == nil || v == nil {
		return validatorErrorf("ValidateMatVecCompatible", ErrNilArray)
	}
	if m.Cols() != v.Dim() {
		return validatorErrorf(fmt.Sprintf("ValidateMatVecCompatible: cols %d vs dim %d", m.Cols(), v.Dim()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecMatCompatible checks v.Dim() == m.Rows() for v·m.
// Errors: ErrNilArray, ErrDimensionMismatch.
func ValidateVecMatCompatible[T Float](v *Vector[T], m *Matrix[T]) error {
	if m == nil || v == nil {
		return validatorErrorf("ValidateVecMatCompatible", ErrNilArray)
	}
	if v.Dim() != m.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateVecMatCompatible: dim %d vs rows %d", v.Dim(), m.Rows()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks the inner dimensions a.Cols() == b.Rows().
// Errors: ErrNilArray, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Float](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilArray)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonEmpty rejects matrices with a zero extent (factorization guard).
// Errors: ErrNilArray, ErrInvalidShape.
func ValidateNonEmpty[T Float](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNonEmpty", ErrNilArray)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return validatorErrorf(fmt.Sprintf("ValidateNonEmpty: %dx%d", m.Rows(), m.Cols()), ErrInvalidShape)
	}

	return nil
}

// ValidateSquare checks a non-nil square matrix.
// Errors: ErrNilArray, ErrDimensionMismatch.
func ValidateSquare[T Float](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilArray)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrDimensionMismatch)
	}

	return nil
}
