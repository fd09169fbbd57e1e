// Package ops provides advanced matrix operations for the minila/matrix package.
// LU computes the partial-pivot factorization P·A = L·U of a general matrix.
package ops

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/minila/matrix"
)

// LUResult is the outcome of LU.
//   - D packs both factors in one rows×cols matrix: the strictly lower part is
//     L (unit diagonal implied), the upper part including the diagonal is U.
//   - Pivots has min(rows, cols) entries; row i was interchanged with row
//     Pivots[i-1] (1-based).
//   - Status is 0, or the 1-based index of the first exactly-zero U diagonal.
type LUResult[T matrix.Float] struct {
	D      *matrix.Matrix[T]
	Pivots []int
	Status int
}

// LU factorizes a into P·L·U without modifying a.
// Errors: ErrNilArray, ErrInvalidShape for a zero extent.
// Complexity: O(rows·cols·min(rows,cols)).
func LU[T matrix.Float](a *matrix.Matrix[T]) (*LUResult[T], error) {
	// Stage 1: validate
	if err := validateFactorInput("LU", a); err != nil {
		return nil, err
	}
	r, c := a.Dims()
	mn := min(r, c)

	// Stage 2: allocate results before touching the backend
	d, err := matrix.NewMatrix[T](r, c)
	if err != nil {
		return nil, fmt.Errorf("LU: %w", err)
	}
	ipiv := make([]int, mn)

	// Stage 3: factorize a private working copy
	status := withSnapshot(a, func(work blas64.General) int {
		lapack64.Getrf(work, ipiv)
		narrowInto(d, work)

		return firstZeroDiagonal(work)
	})

	// Stage 4: 0-based backend pivots to 1-based row numbers
	for i := range ipiv {
		ipiv[i]++
	}

	return &LUResult[T]{D: d, Pivots: ipiv, Status: status}, nil
}

// firstZeroDiagonal returns the 1-based index of the first zero on the diagonal
// of the U factor stored in g, or 0.
func firstZeroDiagonal(g blas64.General) int {
	for i := 0; i < min(g.Rows, g.Cols); i++ {
		if g.Data[i*g.Stride+i] == 0 {
			return i + 1
		}
	}

	return StatusOK
}

// L returns the unit lower-triangular factor (rows×min(rows,cols)).
func (f *LUResult[T]) L() *matrix.Matrix[T] {
	r, c := f.D.Dims()
	k := min(r, c)
	l, _ := matrix.NewMatrix[T](r, k)
	src, dst := f.D.Data(), l.Data()
	for i := 0; i < r; i++ {
		for j := 0; j < k && j <= i; j++ {
			if i == j {
				dst[i*k+j] = 1
				continue
			}
			dst[i*k+j] = src[i*c+j]
		}
	}

	return l
}

// U returns the upper-triangular factor (min(rows,cols)×cols).
func (f *LUResult[T]) U() *matrix.Matrix[T] {
	r, c := f.D.Dims()
	k := min(r, c)
	u, _ := matrix.NewMatrix[T](k, c)
	src, dst := f.D.Data(), u.Data()
	for i := 0; i < k; i++ {
		copy(dst[i*c+i:(i+1)*c], src[i*c+i:(i+1)*c])
	}

	return u
}

// P returns the rows×rows permutation matrix with A = P·L·U.
func (f *LUResult[T]) P() *matrix.Matrix[T] {
	r := f.D.Rows()
	perm := make([]int, r)
	for i := range perm {
		perm[i] = i
	}
	for i, p := range f.Pivots {
		perm[i], perm[p-1] = perm[p-1], perm[i]
	}
	// perm[i] is the original row now at position i, so P(perm[i], i) = 1.
	p, _ := matrix.NewMatrix[T](r, r)
	data := p.Data()
	for i, src := range perm {
		data[src*r+i] = 1
	}

	return p
}

// Det returns the determinant of a square factorized matrix.
// Errors: matrix.ErrDimensionMismatch when D is not square.
func (f *LUResult[T]) Det() (T, error) {
	if err := matrix.ValidateSquare(f.D); err != nil {
		return 0, fmt.Errorf("LU.Det: %w", err)
	}
	n := f.D.Rows()
	data := f.D.Data()
	det := 1.0
	for i := 0; i < n; i++ {
		det *= float64(data[i*n+i])
		if f.Pivots[i] != i+1 {
			det = -det
		}
	}
	if math.IsNaN(det) {
		return 0, fmt.Errorf("LU.Det: %w", matrix.ErrDomain)
	}

	return T(det), nil
}
