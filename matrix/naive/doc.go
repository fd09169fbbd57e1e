// Package naive is the reference multiply engine: portable triple-loop
// products over the row-major buffers of matrix.Vector and matrix.Matrix.
//
// It is the semantic ground truth for the delegated engine in
// matrix/backend: both must agree to floating-point tolerance. It works for
// every matrix.Float kind, including named ~float32/~float64 types the
// backend rejects.
//
// Loop orders are fixed (i→k→j for A·B) so results are reproducible
// run to run.
package naive
