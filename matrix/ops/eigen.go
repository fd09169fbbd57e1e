// Package ops provides advanced matrix operations for the minila/matrix package.
// Eigen computes all eigenvalues and eigenvectors of a real symmetric matrix.
package ops

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/minila/matrix"
)

// EigenResult holds eigenvalues in ascending order and the matching
// orthonormal eigenvectors as the columns of Vectors.
// Status is 0 or StatusNotConverged.
type EigenResult[T matrix.Float] struct {
	Values  *matrix.Vector[T]
	Vectors *matrix.Matrix[T]
	Status  int
}

// Eigen decomposes a symmetric a without modifying it.
// Errors: ErrNilArray, ErrInvalidShape, ErrDimensionMismatch, ErrNotSymmetric.
// Complexity: O(n³).
func Eigen[T matrix.Float](a *matrix.Matrix[T], opts ...Option) (*EigenResult[T], error) {
	// Stage 1: validate square and symmetric
	if err := validateSquareSystem("Eigen", a); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	n := a.Rows()
	data := a.Data()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(float64(data[i*n+j]-data[j*n+i])) > o.symTol {
				return nil, fmt.Errorf("Eigen: (%d,%d): %w", i+1, j+1, ErrNotSymmetric)
			}
		}
	}
	vals, err := matrix.NewVector[T](n)
	if err != nil {
		return nil, fmt.Errorf("Eigen: %w", err)
	}
	vecs, err := matrix.NewMatrix[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("Eigen: %w", err)
	}

	// Stage 2: symmetric driver on the upper triangle of the working copy
	status := withSnapshot(a, func(work blas64.General) int {
		sym := blas64.Symmetric{Uplo: blas.Upper, N: n, Stride: work.Stride, Data: work.Data}
		w := make([]float64, n)
		query := make([]float64, 1)
		lapack64.Syev(lapack.EVCompute, sym, w, query, -1)
		lwork := max(int(query[0]), 1)
		ok := lapack64.Syev(lapack.EVCompute, sym, w, make([]float64, lwork), lwork)

		out := vals.Data()
		for i, x := range w {
			out[i] = T(x)
		}
		narrowInto(vecs, work)
		if !ok {
			return StatusNotConverged
		}

		return StatusOK
	})

	return &EigenResult[T]{Values: vals, Vectors: vecs, Status: status}, nil
}
