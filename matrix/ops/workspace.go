// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/minila/matrix"
)

// Status values shared by LU and SVD.
const (
	StatusOK              = 0
	StatusInvalidArgument = -1
)

// snapshot widens m into a fresh row-major float64 General.
// The returned buffer is owned by the caller of snapshot only.
func snapshot[T matrix.Float](m *matrix.Matrix[T]) blas64.General {
	r, c := m.Dims()
	d := make([]float64, r*c)
	for i, v := range m.Data() {
		d[i] = float64(v)
	}

	return blas64.General{Rows: r, Cols: c, Stride: c, Data: d}
}

// narrowInto copies a row-major float64 General into dst (same shape).
func narrowInto[T matrix.Float](dst *matrix.Matrix[T], src blas64.General) {
	out := dst.Data()
	c := src.Cols
	for i := 0; i < src.Rows; i++ {
		row := src.Data[i*src.Stride : i*src.Stride+c]
		for j, v := range row {
			out[i*c+j] = T(v)
		}
	}
}

// general allocates a zeroed rows×cols float64 General.
func general(rows, cols int) blas64.General {
	return blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: make([]float64, rows*cols)}
}

// withSnapshot runs fn on a private working copy of m and returns fn's status.
// MAIN DESCRIPTION:
//   - Scoped step: the working copy exists only for the duration of fn.
//   - gonum signals invalid arguments by panicking with "lapack: ..." or
//     "blas: ..." messages; those are converted into StatusInvalidArgument on
//     every exit path. Any other panic is re-raised.
func withSnapshot[T matrix.Float](m *matrix.Matrix[T], fn func(work blas64.General) int) (status int) {
	work := snapshot(m)
	defer func() {
		work.Data = nil
		if r := recover(); r != nil {
			msg, ok := r.(string)
			if !ok || !(strings.HasPrefix(msg, "lapack") || strings.HasPrefix(msg, "blas")) {
				panic(r)
			}
			status = StatusInvalidArgument
		}
	}()

	return fn(work)
}

// validateFactorInput runs the checks shared by every factorization entry.
func validateFactorInput[T matrix.Float](op string, m *matrix.Matrix[T]) error {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// statusError maps a failed backend status to the sentinel callers match on.
func statusError(op string, status int) error {
	if status < StatusOK {
		return fmt.Errorf("%s: status %d: %w", op, status, matrix.ErrDomain)
	}

	return fmt.Errorf("%s: zero pivot at %d: %w", op, status, ErrSingular)
}
