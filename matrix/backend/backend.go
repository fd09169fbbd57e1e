// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/minila/matrix"
)

// ---------- operation tags for error wrapping ----------

const (
	opDot       = "backend.Dot"
	opMulMatVec = "backend.MulMatVec"
	opMulVecMat = "backend.MulVecMat"
	opMul       = "backend.Mul"
	opScaleVec  = "backend.ScaleVector"
	opScaleMat  = "backend.ScaleMatrix"
)

func backendErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// checkKind fails with ErrUnsupported when T has no BLAS routine.
func checkKind[T matrix.Float](op string) (kind, error) {
	k := kindOf[T]()
	if k == kindUnsupported {
		var z T
		return k, backendErrorf(op, fmt.Errorf("%T: %w", z, matrix.ErrUnsupported))
	}

	return k, nil
}

// Engine implements matrix.Multiplier by delegating to gonum BLAS.
// The zero value is ready to use; calls are synchronous and CPU-bound.
type Engine[T matrix.Float] struct{}

var (
	_ matrix.Multiplier[float32] = Engine[float32]{}
	_ matrix.Multiplier[float64] = Engine[float64]{}
)

// ---------- buffer marshaling ----------

func vec32(d []float32) blas32.Vector { return blas32.Vector{N: len(d), Data: d, Inc: 1} }
func vec64(d []float64) blas64.Vector { return blas64.Vector{N: len(d), Data: d, Inc: 1} }

// gen32/gen64 wrap a row-major rows×cols buffer; Stride is the leading dimension.
func gen32(rows, cols int, d []float32) blas32.General {
	return blas32.General{Rows: rows, Cols: cols, Stride: cols, Data: d}
}

func gen64(rows, cols int, d []float64) blas64.General {
	return blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: d}
}

// Dot computes Σ v1(k)*v2(k) via ?dot.
// Errors: ErrNilArray, ErrDimensionMismatch, ErrUnsupported.
func (Engine[T]) Dot(v1, v2 *matrix.Vector[T]) (T, error) {
	if err := matrix.ValidateDotCompatible(v1, v2); err != nil {
		return 0, backendErrorf(opDot, err)
	}
	k, err := checkKind[T](opDot)
	if err != nil {
		return 0, err
	}
	if v1.Dim() == 0 {
		return 0, nil
	}
	if k == kindSingle {
		return T(blas32.Dot(vec32(f32(v1.Data())), vec32(f32(v2.Data())))), nil
	}

	return T(blas64.Dot(vec64(f64(v1.Data())), vec64(f64(v2.Data())))), nil
}

// MulMatVec computes y = M·v via ?gemv (NoTrans).
// Errors: ErrNilArray, ErrDimensionMismatch, ErrUnsupported.
func (Engine[T]) MulMatVec(m *matrix.Matrix[T], v *matrix.Vector[T]) (*matrix.Vector[T], error) {
	if err := matrix.ValidateMatVecCompatible(m, v); err != nil {
		return nil, backendErrorf(opMulMatVec, err)
	}
	k, err := checkKind[T](opMulMatVec)
	if err != nil {
		return nil, err
	}

	return gemv(opMulMatVec, k, blas.NoTrans, m, v)
}

// MulVecMat computes y = v·M = Mᵀ·v via ?gemv (Trans).
// Errors: ErrNilArray, ErrDimensionMismatch, ErrUnsupported.
func (Engine[T]) MulVecMat(v *matrix.Vector[T], m *matrix.Matrix[T]) (*matrix.Vector[T], error) {
	if err := matrix.ValidateVecMatCompatible(v, m); err != nil {
		return nil, backendErrorf(opMulVecMat, err)
	}
	k, err := checkKind[T](opMulVecMat)
	if err != nil {
		return nil, err
	}

	return gemv(opMulVecMat, k, blas.Trans, m, v)
}

// gemv allocates the zero result and runs y = op(M)·x with beta = 0.
func gemv[T matrix.Float](op string, k kind, tA blas.Transpose, m *matrix.Matrix[T], v *matrix.Vector[T]) (*matrix.Vector[T], error) {
	rows, cols := m.Dims()
	n := rows
	if tA == blas.Trans {
		n = cols
	}
	res, err := matrix.NewVector[T](n)
	if err != nil {
		return nil, backendErrorf(op, err)
	}
	if rows == 0 || cols == 0 {
		return res, nil // empty product: zeros, nothing to delegate
	}
	if k == kindSingle {
		blas32.Gemv(tA, 1, gen32(rows, cols, f32(m.Data())), vec32(f32(v.Data())), 0, vec32(f32(res.Data())))
	} else {
		blas64.Gemv(tA, 1, gen64(rows, cols, f64(m.Data())), vec64(f64(v.Data())), 0, vec64(f64(res.Data())))
	}

	return res, nil
}

// Mul computes C = A·B via ?gemm (NoTrans, NoTrans).
// Implementation:
//   - Stage 1: validate inner dimensions, then the element kind.
//   - Stage 2: allocate C zeroed; empty operands short-circuit.
//   - Stage 3: Gemm with alpha = 1, beta = 0 on row-major Generals.
//
// Errors: ErrNilArray, ErrDimensionMismatch, ErrUnsupported.
func (Engine[T]) Mul(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, backendErrorf(opMul, err)
	}
	k, err := checkKind[T](opMul)
	if err != nil {
		return nil, err
	}
	m, inner := a.Dims()
	n := b.Cols()
	res, err := matrix.NewMatrix[T](m, n)
	if err != nil {
		return nil, backendErrorf(opMul, err)
	}
	if m == 0 || n == 0 || inner == 0 {
		return res, nil
	}
	if k == kindSingle {
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			gen32(m, inner, f32(a.Data())), gen32(inner, n, f32(b.Data())),
			0, gen32(m, n, f32(res.Data())))
	} else {
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			gen64(m, inner, f64(a.Data())), gen64(inner, n, f64(b.Data())),
			0, gen64(m, n, f64(res.Data())))
	}

	return res, nil
}

// ScaleVector returns alpha*v via ?scal on a copy.
// Errors: ErrNilArray, ErrUnsupported.
func (Engine[T]) ScaleVector(v *matrix.Vector[T], alpha T) (*matrix.Vector[T], error) {
	if v == nil {
		return nil, backendErrorf(opScaleVec, matrix.ErrNilArray)
	}
	k, err := checkKind[T](opScaleVec)
	if err != nil {
		return nil, err
	}
	res := v.Clone()
	scal(k, alpha, res.Data())

	return res, nil
}

// ScaleMatrix returns alpha*m via ?scal over the flat buffer of a copy.
// Errors: ErrNilArray, ErrUnsupported.
func (Engine[T]) ScaleMatrix(m *matrix.Matrix[T], alpha T) (*matrix.Matrix[T], error) {
	if m == nil {
		return nil, backendErrorf(opScaleMat, matrix.ErrNilArray)
	}
	k, err := checkKind[T](opScaleMat)
	if err != nil {
		return nil, err
	}
	res := m.Clone()
	scal(k, alpha, res.Data())

	return res, nil
}

// scal scales d in place; d is a private copy owned by the caller.
func scal[T matrix.Float](k kind, alpha T, d []T) {
	if len(d) == 0 {
		return
	}
	if k == kindSingle {
		blas32.Scal(float32(alpha), vec32(f32(d)))
		return
	}
	blas64.Scal(float64(alpha), vec64(f64(d)))
}
