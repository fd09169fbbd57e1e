// Package ops provides the factorization layer of the minila/matrix package:
// LU with partial pivoting and full SVD, delegated to gonum LAPACK, plus the
// derived operations built on them (Solve, Inverse, Det, Rank).
//
// Non-destructive contract:
//
//	LAPACK routines overwrite their input. Every call here first snapshots the
//	caller's matrix into a private float64 working buffer (widening float32
//	kinds), factorizes that buffer, and narrows the results back into freshly
//	allocated matrices. The caller's matrix is never written, and the working
//	buffer never escapes the call.
//
// Status codes are data, not errors:
//
//	0  success;
//	>0 numerical rank deficiency (LU: 1-based index of the first zero pivot;
//	   SVD: the bidiagonal iteration did not converge);
//	<0 the backend rejected its arguments.
//
// A non-zero status still comes with a fully shaped result.
package ops
