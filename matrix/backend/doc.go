// Package backend is the delegated multiply engine: it marshals the
// row-major buffers of matrix.Vector and matrix.Matrix into gonum BLAS calls
// (blas32 for float32, blas64 for float64).
//
// Layout:
//
//	gonum's blas32/blas64 General matrices are row-major, matching
//	matrix.Array storage, so buffers are passed as-is with Stride = Cols
//	(the leading dimension of a row-major matrix). v·M is computed as Mᵀ·v by
//	flipping the transpose flag of Gemv instead of materializing Mᵀ.
//
// Validation:
//
//	Every operation runs the same shape checks as matrix/naive before any
//	BLAS call, so malformed requests never reach the backend. Element kinds
//	other than exactly float32/float64 (e.g. `type Celsius float64`) are
//	rejected with matrix.ErrUnsupported; there is no silent fallback to the
//	reference loops.
package backend
