// Package ops provides advanced matrix operations for the minila/matrix package.
// SVD computes the full singular value decomposition A = U·Σ·Vᵀ.
package ops

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/minila/matrix"
)

// StatusNotConverged is the SVD status when the bidiagonal QR iteration failed.
const StatusNotConverged = 1

// SVDResult is the outcome of SVD.
//   - U is rows×rows, V is cols×cols (V itself, not Vᵀ); both orthogonal.
//   - S holds min(rows, cols) singular values in descending order, all >= 0.
//   - Status is 0, StatusNotConverged or StatusInvalidArgument.
type SVDResult[T matrix.Float] struct {
	U      *matrix.Matrix[T]
	S      *matrix.Vector[T]
	V      *matrix.Matrix[T]
	Status int
}

// SVD decomposes a without modifying it.
// Errors: ErrNilArray, ErrInvalidShape for a zero extent.
// Complexity: O(rows·cols·min(rows,cols)) plus the orthogonal factor builds.
func SVD[T matrix.Float](a *matrix.Matrix[T]) (*SVDResult[T], error) {
	// Stage 1: validate
	if err := validateFactorInput("SVD", a); err != nil {
		return nil, err
	}
	r, c := a.Dims()
	mn := min(r, c)

	// Stage 2: allocate results
	u, err := matrix.NewMatrix[T](r, r)
	if err != nil {
		return nil, fmt.Errorf("SVD: %w", err)
	}
	v, err := matrix.NewMatrix[T](c, c)
	if err != nil {
		return nil, fmt.Errorf("SVD: %w", err)
	}
	s, err := matrix.NewVector[T](mn)
	if err != nil {
		return nil, fmt.Errorf("SVD: %w", err)
	}

	// Stage 3: workspace query, then the decomposition proper
	status := withSnapshot(a, func(work blas64.General) int {
		gu, gvt := general(r, r), general(c, c)
		sv := make([]float64, mn)
		query := make([]float64, 1)
		lapack64.Gesvd(lapack.SVDAll, lapack.SVDAll, work, gu, gvt, sv, query, -1)
		lwork := int(query[0])
		scratch := make([]float64, max(lwork, 1))
		ok := lapack64.Gesvd(lapack.SVDAll, lapack.SVDAll, work, gu, gvt, sv, scratch, lwork)

		narrowInto(u, gu)
		narrowTransposed(v, gvt)
		out := s.Data()
		for i, x := range sv {
			out[i] = T(x)
		}
		if !ok {
			return StatusNotConverged
		}

		return StatusOK
	})

	return &SVDResult[T]{U: u, S: s, V: v, Status: status}, nil
}

// narrowTransposed stores srcᵀ into the square dst.
func narrowTransposed[T matrix.Float](dst *matrix.Matrix[T], src blas64.General) {
	out := dst.Data()
	n := src.Rows
	for i := 0; i < n; i++ {
		for j := 0; j < src.Cols; j++ {
			out[j*n+i] = T(src.Data[i*src.Stride+j])
		}
	}
}

// Rank counts singular values with |s| >= the rank tolerance.
func (f *SVDResult[T]) Rank(opts ...Option) int {
	o := gatherOptions(opts...)
	n := 0
	for _, x := range f.S.Data() {
		if math.Abs(float64(x)) >= o.rankTol {
			n++
		}
	}

	return n
}

// Rank returns the numerical rank of a via SVD.
// Errors: as SVD; a non-converged decomposition is reported as matrix.ErrDomain.
func Rank[T matrix.Float](a *matrix.Matrix[T], opts ...Option) (int, error) {
	f, err := SVD(a)
	if err != nil {
		return 0, fmt.Errorf("Rank: %w", err)
	}
	if f.Status != StatusOK {
		return 0, fmt.Errorf("Rank: svd status %d: %w", f.Status, matrix.ErrDomain)
	}

	return f.Rank(opts...), nil
}
