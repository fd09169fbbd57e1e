// SPDX-License-Identifier: MIT

package matrix

// Multiplier is the operation surface shared by the reference engine
// (matrix/naive) and the delegated engine (matrix/backend).
//
// Contract:
//   - Inputs are never mutated; every result is freshly allocated.
//   - Shape validation happens before any computation and reports
//     ErrNilArray / ErrDimensionMismatch.
//   - Implementations agree with the reference engine to floating-point tolerance.
type Multiplier[T Float] interface {
	// Dot returns Σ v1(k)*v2(k).
	Dot(v1, v2 *Vector[T]) (T, error)

	// MulMatVec returns M·v, a vector of length M.Rows().
	MulMatVec(m *Matrix[T], v *Vector[T]) (*Vector[T], error)

	// MulVecMat returns v·M, a vector of length M.Cols().
	MulVecMat(v *Vector[T], m *Matrix[T]) (*Vector[T], error)

	// Mul returns A·B with shape A.Rows()×B.Cols().
	Mul(a, b *Matrix[T]) (*Matrix[T], error)

	// ScaleVector returns alpha*v.
	ScaleVector(v *Vector[T], alpha T) (*Vector[T], error)

	// ScaleMatrix returns alpha*m.
	ScaleMatrix(m *Matrix[T], alpha T) (*Matrix[T], error)
}
