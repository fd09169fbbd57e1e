// SPDX-License-Identifier: MIT

package backend

import "github.com/katalvlaran/minila/matrix"

// Package-level facades over the BLAS Engine.

// Dot returns Σ v1(k)*v2(k).
func Dot[T matrix.Float](v1, v2 *matrix.Vector[T]) (T, error) { return Engine[T]{}.Dot(v1, v2) }

// MulMatVec returns M·v.
func MulMatVec[T matrix.Float](m *matrix.Matrix[T], v *matrix.Vector[T]) (*matrix.Vector[T], error) {
	return Engine[T]{}.MulMatVec(m, v)
}

// MulVecMat returns v·M.
func MulVecMat[T matrix.Float](v *matrix.Vector[T], m *matrix.Matrix[T]) (*matrix.Vector[T], error) {
	return Engine[T]{}.MulVecMat(v, m)
}

// Mul returns A·B.
func Mul[T matrix.Float](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	return Engine[T]{}.Mul(a, b)
}

// Magnitude returns dot(v, v).
func Magnitude[T matrix.Float](v *matrix.Vector[T]) (T, error) {
	return matrix.Magnitude[T](Engine[T]{}, v)
}

// Norm returns the Euclidean norm of v.
func Norm[T matrix.Float](v *matrix.Vector[T]) (T, error) {
	return matrix.Norm[T](Engine[T]{}, v)
}

// Cosine returns dot(v1, v2) / (Magnitude(v1)*Magnitude(v2)).
func Cosine[T matrix.Float](v1, v2 *matrix.Vector[T]) (T, error) {
	return matrix.Cosine[T](Engine[T]{}, v1, v2)
}

// Angle returns acos(Cosine(v1, v2)) in radians; ErrDomain when the cosine leaves [-1, 1].
func Angle[T matrix.Float](v1, v2 *matrix.Vector[T], opts ...matrix.Option) (T, error) {
	return matrix.Angle[T](Engine[T]{}, v1, v2, opts...)
}
