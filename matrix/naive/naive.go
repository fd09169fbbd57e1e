// SPDX-License-Identifier: MIT

package naive

import (
	"fmt"

	"github.com/katalvlaran/minila/matrix"
)

// ---------- operation tags for error wrapping ----------

const (
	opDot       = "naive.Dot"
	opMulMatVec = "naive.MulMatVec"
	opMulVecMat = "naive.MulVecMat"
	opMul       = "naive.Mul"
	opScaleVec  = "naive.ScaleVector"
	opScaleMat  = "naive.ScaleMatrix"
)

// naiveErrorf tags an error with the operation that detected it.
func naiveErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Engine implements matrix.Multiplier with plain Go loops.
// The zero value is ready to use and safe for concurrent use.
type Engine[T matrix.Float] struct{}

var _ matrix.Multiplier[float64] = Engine[float64]{}

// Dot computes Σ v1(k)*v2(k).
// Errors: ErrNilArray, ErrDimensionMismatch.
// Complexity: O(n).
func (Engine[T]) Dot(v1, v2 *matrix.Vector[T]) (T, error) {
	if err := matrix.ValidateDotCompatible(v1, v2); err != nil {
		return 0, naiveErrorf(opDot, err)
	}
	a, b := v1.Data(), v2.Data()
	var acc T
	for k := range a {
		acc += a[k] * b[k]
	}

	return acc, nil
}

// MulMatVec computes y = M·v, y(i) = Σ_k M(i,k)*v(k).
// Errors: ErrNilArray, ErrDimensionMismatch when M.Cols() != v.Dim().
// Complexity: O(rows*cols).
func (Engine[T]) MulMatVec(m *matrix.Matrix[T], v *matrix.Vector[T]) (*matrix.Vector[T], error) {
	if err := matrix.ValidateMatVecCompatible(m, v); err != nil {
		return nil, naiveErrorf(opMulMatVec, err)
	}
	rows, cols := m.Dims()
	res, err := matrix.NewVector[T](rows)
	if err != nil {
		return nil, naiveErrorf(opMulMatVec, err)
	}
	md, x, y := m.Data(), v.Data(), res.Data()
	var i, k, base int
	var acc T
	for i = 0; i < rows; i++ {
		acc = 0
		base = i * cols
		for k = 0; k < cols; k++ {
			acc += md[base+k] * x[k]
		}
		y[i] = acc
	}

	return res, nil
}

// MulVecMat computes y = v·M, y(j) = Σ_k v(k)*M(k,j).
// Errors: ErrNilArray, ErrDimensionMismatch when v.Dim() != M.Rows().
// Complexity: O(rows*cols).
func (Engine[T]) MulVecMat(v *matrix.Vector[T], m *matrix.Matrix[T]) (*matrix.Vector[T], error) {
	if err := matrix.ValidateVecMatCompatible(v, m); err != nil {
		return nil, naiveErrorf(opMulVecMat, err)
	}
	rows, cols := m.Dims()
	res, err := matrix.NewVector[T](cols)
	if err != nil {
		return nil, naiveErrorf(opMulVecMat, err)
	}
	md, x, y := m.Data(), v.Data(), res.Data()
	// k-outer keeps the inner loop on a contiguous row of M.
	var j, k, base int
	var xk T
	for k = 0; k < rows; k++ {
		xk = x[k]
		base = k * cols
		for j = 0; j < cols; j++ {
			y[j] += xk * md[base+j]
		}
	}

	return res, nil
}

// Mul computes C = A·B, C(i,j) = Σ_k A(i,k)*B(k,j).
// Implementation:
//   - Stage 1: validate A.Cols() == B.Rows().
//   - Stage 2: allocate C (A.Rows()×B.Cols()), then i→k→j over row-major strides.
//
// Errors: ErrNilArray, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func (Engine[T]) Mul(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, naiveErrorf(opMul, err)
	}
	aRows, aCols := a.Dims()
	bCols := b.Cols()
	res, err := matrix.NewMatrix[T](aRows, bCols)
	if err != nil {
		return nil, naiveErrorf(opMul, err)
	}
	ad, bd, cd := a.Data(), b.Data(), res.Data()
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetC int
		av                                 T
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetC = i * bCols
		for k = 0; k < aCols; k++ {
			av = ad[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				cd[rowOffsetC+j] += av * bd[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// ScaleVector returns alpha*v. Always defined for a non-nil v.
func (Engine[T]) ScaleVector(v *matrix.Vector[T], alpha T) (*matrix.Vector[T], error) {
	if v == nil {
		return nil, naiveErrorf(opScaleVec, matrix.ErrNilArray)
	}

	return v.Scale(alpha), nil
}

// ScaleMatrix returns alpha*m. Always defined for a non-nil m.
func (Engine[T]) ScaleMatrix(m *matrix.Matrix[T], alpha T) (*matrix.Matrix[T], error) {
	if m == nil {
		return nil, naiveErrorf(opScaleMat, matrix.ErrNilArray)
	}

	return m.Scale(alpha), nil
}
