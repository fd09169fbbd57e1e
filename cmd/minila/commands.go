// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minila/integration"
	"github.com/katalvlaran/minila/matrix"
	"github.com/katalvlaran/minila/matrix/backend"
	"github.com/katalvlaran/minila/matrix/naive"
	"github.com/katalvlaran/minila/matrix/ops"
	"github.com/katalvlaran/minila/numerical"
	"github.com/katalvlaran/minila/process"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "minila",
		Short:         "Dense linear algebra and numerical toolkit demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSVDCmd(),
		newLUCmd(),
		newSolveCmd(),
		newMulCmd(),
		newIntegrateCmd(),
		newRootFindCmd(),
		newBrownianCmd(),
	)

	return root
}

func newSVDCmd() *cobra.Command {
	var a string
	var tol float64
	cmd := &cobra.Command{
		Use:   "svd",
		Short: "Singular value decomposition A = U·diag(S)·Vᵀ",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tol < 0 {
				return fmt.Errorf("svd: --tol must be non-negative, got %g", tol)
			}
			m, err := parseMatrix(a)
			if err != nil {
				return fmt.Errorf("svd: --a: %w", err)
			}
			f, err := ops.SVD(m)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "status: %d\n", f.Status)
			fmt.Fprintf(w, "S: %s\n", f.S)
			fmt.Fprintf(w, "rank: %d\n", f.Rank(ops.WithRankTolerance(tol)))
			fmt.Fprintf(w, "U:\n%s", f.U)
			fmt.Fprintf(w, "V:\n%s", f.V)

			return nil
		},
	}
	cmd.Flags().StringVar(&a, "a", "", "matrix, rows separated by ';'")
	cmd.Flags().Float64Var(&tol, "tol", ops.DefaultRankTolerance, "rank tolerance")
	_ = cmd.MarkFlagRequired("a")

	return cmd
}

func newLUCmd() *cobra.Command {
	var a string
	cmd := &cobra.Command{
		Use:   "lu",
		Short: "LU factorization with partial pivoting A = P·L·U",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := parseMatrix(a)
			if err != nil {
				return fmt.Errorf("lu: --a: %w", err)
			}
			f, err := ops.LU(m)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "status: %d\n", f.Status)
			fmt.Fprintf(w, "pivots: %v\n", f.Pivots)
			fmt.Fprintf(w, "L:\n%s", f.L())
			fmt.Fprintf(w, "U:\n%s", f.U())
			if m.Rows() == m.Cols() {
				d, err := f.Det()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "det: %g\n", d)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&a, "a", "", "matrix, rows separated by ';'")
	_ = cmd.MarkFlagRequired("a")

	return cmd
}

func newSolveCmd() *cobra.Command {
	var a, b string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve A·X = B for square A",
		RunE: func(cmd *cobra.Command, _ []string) error {
			am, err := parseMatrix(a)
			if err != nil {
				return fmt.Errorf("solve: --a: %w", err)
			}
			bm, err := parseMatrix(b)
			if err != nil {
				return fmt.Errorf("solve: --b: %w", err)
			}
			x, err := ops.Solve(am, bm)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "X:\n%s", x)

			return nil
		},
	}
	cmd.Flags().StringVar(&a, "a", "", "coefficient matrix")
	cmd.Flags().StringVar(&b, "b", "", "right-hand side, one column per system")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

func newMulCmd() *cobra.Command {
	var size, reps int
	var seed int64
	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Compare the naive and BLAS multiply engines on random square matrices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size <= 0 || reps <= 0 {
				return fmt.Errorf("mul: --size and --reps must be positive")
			}
			rng := rand.New(rand.NewSource(seed))
			a, err := randomMatrix(rng, size)
			if err != nil {
				return err
			}
			b, err := randomMatrix(rng, size)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			var ref *matrix.Matrix[float64]
			for _, e := range []struct {
				name string
				eng  matrix.Multiplier[float64]
			}{
				{"naive", naive.Engine[float64]{}},
				{"backend", backend.Engine[float64]{}},
			} {
				c, d, err := timeMul(e.eng, a, b, reps)
				if err != nil {
					return fmt.Errorf("mul: %s: %w", e.name, err)
				}
				fmt.Fprintf(w, "%-8s %v/op\n", e.name, d)
				if ref == nil {
					ref = c
					continue
				}
				ok, err := matrix.MatricesClose(c, ref, 1e-9, 1e-9)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "agree:   %t\n", ok)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 64, "matrix order")
	cmd.Flags().IntVar(&reps, "reps", 3, "repetitions per engine")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

func randomMatrix(rng *rand.Rand, n int) (*matrix.Matrix[float64], error) {
	m, err := matrix.NewMatrix[float64](n, n)
	if err != nil {
		return nil, err
	}
	for i := range m.Data() {
		m.Data()[i] = rng.Float64()*2 - 1
	}

	return m, nil
}

func timeMul(e matrix.Multiplier[float64], a, b *matrix.Matrix[float64], reps int) (*matrix.Matrix[float64], time.Duration, error) {
	var c *matrix.Matrix[float64]
	var err error
	start := time.Now()
	for i := 0; i < reps; i++ {
		if c, err = e.Mul(a, b); err != nil {
			return nil, 0, err
		}
	}

	return c, time.Since(start) / time.Duration(reps), nil
}

func newIntegrateCmd() *cobra.Command {
	var fn, rule string
	var from, to float64
	var n int
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate a named function over [from, to]",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lookupFunction(fn)
			if err != nil {
				return fmt.Errorf("integrate: %w", err)
			}
			if n < 0 {
				return fmt.Errorf("integrate: --n must be non-negative, got %d", n)
			}
			var opts []integration.Option
			if n > 0 {
				opts = append(opts, integration.WithSubdivisions(n))
			}
			var v float64
			switch strings.ToLower(rule) {
			case "trapezium":
				v, err = integration.Trapezium(f, from, to, opts...)
			case "simpson":
				v, err = integration.Simpson(f, from, to, opts...)
			case "simpson38":
				v, err = integration.Simpson38(f, from, to, opts...)
			default:
				return fmt.Errorf("integrate: unknown rule %q", rule)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s [%g, %g] = %.10g\n", rule, fn, from, to, v)

			return nil
		},
	}
	cmd.Flags().StringVar(&fn, "fn", "sin", "function: "+strings.Join(functionNames(), ", "))
	cmd.Flags().StringVar(&rule, "rule", "simpson", "trapezium, simpson or simpson38")
	cmd.Flags().Float64Var(&from, "from", 0, "lower bound")
	cmd.Flags().Float64Var(&to, "to", 1, "upper bound")
	cmd.Flags().IntVar(&n, "n", 0, "subdivisions (0 keeps the rule default)")

	return cmd
}

func newRootFindCmd() *cobra.Command {
	var fn string
	var start, prec float64
	var maxIter int
	cmd := &cobra.Command{
		Use:   "root",
		Short: "Newton root finding on a named function",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(prec > 0) || maxIter <= 0 {
				return fmt.Errorf("root: --precision and --max-iter must be positive")
			}
			f, err := lookupFunction(fn)
			if err != nil {
				return fmt.Errorf("root: %w", err)
			}
			r, err := numerical.Newton(f, start,
				numerical.WithPrecision(prec),
				numerical.WithMaxIter(maxIter),
			)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)

			return nil
		},
	}
	cmd.Flags().StringVar(&fn, "fn", "cubic", "function: "+strings.Join(functionNames(), ", "))
	cmd.Flags().Float64Var(&start, "start", 1, "initial guess")
	cmd.Flags().Float64Var(&prec, "precision", numerical.DefaultPrecision, "stop when |x_n - x_{n-1}| <= precision")
	cmd.Flags().IntVar(&maxIter, "max-iter", numerical.DefaultMaxIter, "iteration cap")

	return cmd
}

func newBrownianCmd() *cobra.Command {
	var paths, steps int
	var start, mu, sigma float64
	var seed int64
	var geometric bool
	cmd := &cobra.Command{
		Use:   "brownian",
		Short: "Simulate an ensemble of Brownian paths and print the mean path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mean := process.NewConstant(mu)
			vol := process.NewConstant(sigma)
			var p process.Process[float64] = process.NewBrownian[float64](start, mean, vol)
			if geometric {
				p = process.NewGeometric[float64](start, mean, vol)
			}
			ens, err := process.Ensemble(p, paths, steps, seed)
			if err != nil {
				return err
			}
			avg, err := process.Mean(ens)
			if err != nil {
				return err
			}

			return writeSeries(cmd.OutOrStdout(), avg)
		},
	}
	cmd.Flags().IntVar(&paths, "paths", 100, "number of paths")
	cmd.Flags().IntVar(&steps, "steps", 10, "points per path")
	cmd.Flags().Float64Var(&start, "start", 0, "initial value")
	cmd.Flags().Float64Var(&mu, "mu", 0, "constant drift per step")
	cmd.Flags().Float64Var(&sigma, "sigma", 1, "constant volatility per step")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&geometric, "geometric", false, "use geometric Brownian motion")

	return cmd
}

// writeSeries prints one "index value" line per element, 1-based.
func writeSeries(w io.Writer, v *matrix.Vector[float64]) error {
	for i, x := range v.Data() {
		if _, err := fmt.Fprintf(w, "%d %.6g\n", i+1, x); err != nil {
			return err
		}
	}

	return nil
}
