// Package ops provides advanced matrix operations for the minila/matrix package.
// Solve and Inverse reuse the LU factorization of a square system matrix.
package ops

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/minila/matrix"
)

// Solve returns X with A·X = B for a square non-singular A.
// Neither A nor B is modified.
// Errors: ErrNilArray, ErrInvalidShape, ErrDimensionMismatch (non-square A or
// B.Rows() != A.Rows()), ErrSingular.
// Complexity: O(n³ + n²·k) for B n×k.
func Solve[T matrix.Float](a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	// Stage 1: validate
	if err := validateSquareSystem("Solve", a); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("Solve: %w", matrix.ErrNilArray)
	}
	n := a.Rows()
	if b.Rows() != n {
		return nil, fmt.Errorf("Solve: rhs %dx%d for %dx%d system: %w", b.Rows(), b.Cols(), n, n, matrix.ErrDimensionMismatch)
	}
	x, err := matrix.NewMatrix[T](b.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if b.Cols() == 0 {
		return x, nil
	}

	// Stage 2: factorize and substitute on private copies
	rhs := snapshot(b)
	ipiv := make([]int, n)
	status := withSnapshot(a, func(work blas64.General) int {
		lapack64.Getrf(work, ipiv)
		if s := firstZeroDiagonal(work); s != StatusOK {
			return s
		}
		lapack64.Getrs(blas.NoTrans, work, rhs, ipiv)

		return StatusOK
	})
	if status != StatusOK {
		return nil, statusError("Solve", status)
	}
	narrowInto(x, rhs)

	return x, nil
}

// SolveVector returns x with A·x = b.
// Errors: as Solve.
func SolveVector[T matrix.Float](a *matrix.Matrix[T], b *matrix.Vector[T]) (*matrix.Vector[T], error) {
	if b == nil {
		return nil, fmt.Errorf("SolveVector: %w", matrix.ErrNilArray)
	}
	col, err := matrix.NewMatrixFrom(b.Dim(), 1, b.Data())
	if err != nil {
		return nil, fmt.Errorf("SolveVector: %w", err)
	}
	x, err := Solve(a, col)
	if err != nil {
		return nil, err
	}

	return matrix.NewVectorFrom(x.Data()), nil
}

// Inverse returns A⁻¹ for a square non-singular A.
// Errors: ErrNilArray, ErrInvalidShape, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³).
func Inverse[T matrix.Float](a *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := validateSquareSystem("Inverse", a); err != nil {
		return nil, err
	}
	n := a.Rows()
	inv, err := matrix.NewMatrix[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	ipiv := make([]int, n)
	status := withSnapshot(a, func(work blas64.General) int {
		lapack64.Getrf(work, ipiv)
		if s := firstZeroDiagonal(work); s != StatusOK {
			return s
		}
		query := make([]float64, 1)
		lapack64.Getri(work, ipiv, query, -1)
		lwork := max(int(query[0]), n)
		if !lapack64.Getri(work, ipiv, make([]float64, lwork), lwork) {
			return n
		}
		narrowInto(inv, work)

		return StatusOK
	})
	if status != StatusOK {
		return nil, statusError("Inverse", status)
	}

	return inv, nil
}

// Det returns det(A) of a square matrix via LU.
// A singular matrix yields 0 without error.
// Errors: ErrNilArray, ErrInvalidShape, ErrDimensionMismatch.
func Det[T matrix.Float](a *matrix.Matrix[T]) (T, error) {
	if err := validateSquareSystem("Det", a); err != nil {
		return 0, err
	}
	f, err := LU(a)
	if err != nil {
		return 0, fmt.Errorf("Det: %w", err)
	}
	if f.Status > StatusOK {
		return 0, nil
	}
	if f.Status < StatusOK {
		return 0, fmt.Errorf("Det: status %d: %w", f.Status, matrix.ErrDomain)
	}

	return f.Det()
}

// validateSquareSystem checks a non-nil, non-empty, square matrix.
func validateSquareSystem[T matrix.Float](op string, a *matrix.Matrix[T]) error {
	if err := validateFactorInput(op, a); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
