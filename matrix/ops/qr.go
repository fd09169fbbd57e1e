// Package ops provides advanced matrix operations for the minila/matrix package.
// QR computes the thin Householder decomposition A = Q·R for rows >= cols.
package ops

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/minila/matrix"
)

// QRResult holds Q (rows×cols, orthonormal columns) and R (cols×cols, upper triangular).
type QRResult[T matrix.Float] struct {
	Q      *matrix.Matrix[T]
	R      *matrix.Matrix[T]
	Status int
}

// QR decomposes a without modifying it.
// Errors: ErrNilArray, ErrInvalidShape, ErrTallRequired.
// Complexity: O(rows·cols²).
func QR[T matrix.Float](a *matrix.Matrix[T]) (*QRResult[T], error) {
	// Stage 1: validate
	if err := validateFactorInput("QR", a); err != nil {
		return nil, err
	}
	r, c := a.Dims()
	if r < c {
		return nil, fmt.Errorf("QR: %dx%d: %w", r, c, ErrTallRequired)
	}
	q, err := matrix.NewMatrix[T](r, c)
	if err != nil {
		return nil, fmt.Errorf("QR: %w", err)
	}
	rf, err := matrix.NewMatrix[T](c, c)
	if err != nil {
		return nil, fmt.Errorf("QR: %w", err)
	}

	// Stage 2: Householder reflectors, then Q applied to the leading identity columns
	status := withSnapshot(a, func(work blas64.General) int {
		tau := make([]float64, c)
		query := make([]float64, 1)
		lapack64.Geqrf(work, tau, query, -1)
		lwork := max(int(query[0]), 1)
		lapack64.Geqrf(work, tau, make([]float64, lwork), lwork)

		out := rf.Data()
		for i := 0; i < c; i++ {
			for j := i; j < c; j++ {
				out[i*c+j] = T(work.Data[i*work.Stride+j])
			}
		}

		qg := general(r, c)
		for i := 0; i < c; i++ {
			qg.Data[i*c+i] = 1
		}
		lapack64.Ormqr(blas.Left, blas.NoTrans, work, tau, qg, query, -1)
		lwork = max(int(query[0]), 1)
		lapack64.Ormqr(blas.Left, blas.NoTrans, work, tau, qg, make([]float64, lwork), lwork)
		narrowInto(q, qg)

		return StatusOK
	})

	return &QRResult[T]{Q: q, R: rf, Status: status}, nil
}
