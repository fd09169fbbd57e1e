// Package numerical provides scalar calculus helpers built on plain functions:
// central-difference derivatives and Newton root finding.
//
// All arithmetic runs in float64 regardless of T; f is always evaluated at T
// arguments so callers keep their own precision.
//
// Convergence is data: Newton returns a Root whose Status is StatusConverged or
// StatusNotConverged. Errors are reserved for unusable inputs (nil functions)
// and for a vanishing derivative, which makes the next iterate undefined.
package numerical
