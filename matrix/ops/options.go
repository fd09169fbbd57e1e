// SPDX-License-Identifier: MIT

package ops

import "math"

// DefaultRankTolerance is the smallest |singular value| counted by Rank.
const DefaultRankTolerance = 1e-6

// DefaultSymmetryTolerance bounds |a(i,j) - a(j,i)| accepted by Eigen.
const DefaultSymmetryTolerance = 1e-9

const (
	panicRankTolInvalid = "ops: WithRankTolerance: tol must be finite, non-negative"
	panicSymTolInvalid  = "ops: WithSymmetryTolerance: tol must be finite, non-negative"
)

// Option configures derived factorization queries.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	rankTol float64
	symTol  float64
}

// WithRankTolerance sets the threshold used by SVD.Rank.
// Panics when tol is NaN, ±Inf or negative.
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithSymmetryTolerance sets the symmetry check used by Eigen.
// Panics when tol is NaN, ±Inf or negative.
func WithSymmetryTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSymTolInvalid)
	}

	return func(o *Options) { o.symTol = tol }
}

func gatherOptions(user ...Option) Options {
	o := Options{rankTol: DefaultRankTolerance, symTol: DefaultSymmetryTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
