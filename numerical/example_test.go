// SPDX-License-Identifier: MIT
package numerical_test

import (
	"fmt"

	"github.com/katalvlaran/minila/numerical"
)

func ExampleNewton() {
	f := func(x float64) float64 { return x*x - 9 }
	r, _ := numerical.Newton(f, 1.0)
	fmt.Printf("%.6f %d\n", r.Root, r.Status)
	// Output: 3.000000 0
}

func ExampleDerivative() {
	f := func(x float64) float64 { return x * x }
	d, _ := numerical.Derivative(f, 5.0)
	fmt.Printf("%.4f\n", d)
	// Output: 10.0000
}
