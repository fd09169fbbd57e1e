// SPDX-License-Identifier: MIT

package ops

import "errors"

// ErrSingular is returned by Solve and Inverse when LU meets a zero pivot.
var ErrSingular = errors.New("ops: matrix is singular")

// ErrNotSymmetric is returned by Eigen when the input is not symmetric.
var ErrNotSymmetric = errors.New("ops: matrix is not symmetric")

// ErrTallRequired is returned by QR when rows < cols.
var ErrTallRequired = errors.New("ops: matrix must have rows >= cols")
