// SPDX-License-Identifier: MIT
package integration_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/minila/integration"
)

func ExampleSimpson() {
	area, _ := integration.Simpson(math.Sin, 0, math.Pi)
	fmt.Printf("%.6f\n", area)
	// Output: 2.000000
}

func ExampleGrid() {
	g, _ := integration.Grid(0.0, 2.0, 4)
	fmt.Println(g)
	// Output: [0, 0.5, 1, 1.5, 2]
}
