// Package matrix offers dense row-major numerical storage for vectors and
// matrices of float32/float64 (or any ~float32 / ~float64 kind).
//
// The matrix package provides:
//
//   - Array: an N-dimensional buffer with a shape descriptor, row-major
//     offsets (Σ idx[a] * Π_{b>a} shape[b]), bounds-checked access and
//     elementwise Add/Sub/Scale.
//   - Vector and Matrix: rank-1 and rank-2 facades with 1-based accessors
//     v(k) and M(i,j) and named extents (Dim; Rows/Cols).
//   - Multiplier: the operation surface implemented by two strategies,
//     matrix/naive (portable reference loops) and matrix/backend (gonum BLAS).
//   - Magnitude (dot(v,v)), Norm, Cosine and Angle built on any Multiplier.
//   - Column/row means, centering and sample Covariance over observation tables.
//
// Every operation is eager and returns a freshly allocated value; values never
// share buffers. Errors are package sentinels matched with errors.Is.
//
// Factorizations (LU, SVD, QR, Eigen) and the solvers built on them live in matrix/ops.
package matrix
