// Package minila is a small dense linear-algebra toolkit: N-dimensional
// row-major arrays, vectors and matrices, two interchangeable multiply
// engines, LAPACK-backed factorizations and a handful of numerical helpers.
//
// What is inside?
//
//	A library of eager, value-semantics building blocks:
//		• Storage: Array (any rank), Vector (rank 1), Matrix (rank 2), 1-based accessors
//		• Products: a portable reference engine and a gonum BLAS engine, same surface
//		• Factorizations: LU, SVD, QR, symmetric Eigen; Solve, Inverse, Det, Rank
//		• Calculus: central-difference derivatives, Newton root finding
//		• Quadrature: trapezium, Simpson 1/3 and 3/8
//		• Processes: constant, Brownian and geometric Brownian paths
//
// Why this shape?
//
//   - Every value owns its buffer; nothing aliases, nothing mutates in place.
//   - Shape errors are sentinels checked before any native routine runs.
//   - Factorizations work on private snapshots, so callers' matrices survive.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/         - Array, Vector, Matrix, validators, geometry, statistics
//	matrix/naive/   - reference multiply engine (plain loops)
//	matrix/backend/ - BLAS multiply engine (gonum blas32/blas64)
//	matrix/ops/     - LU, SVD, QR, Eigen, Solve, Inverse via gonum lapack64
//	numerical/      - Derivative, Newton
//	integration/    - Trapezium, Simpson, Simpson38, Grid
//	process/        - Constant, Brownian, Geometric, Ensemble
//	cmd/minila/     - command-line demo of the above
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{4, 0}, {0, 9}})
//	f, _ := ops.SVD(A) // f.S == [9, 4], f.Status == 0
//
//	go get github.com/katalvlaran/minila
package minila
