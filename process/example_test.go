// SPDX-License-Identifier: MIT
package process_test

import (
	"fmt"

	"github.com/katalvlaran/minila/process"
)

func ExampleBrownian() {
	drift := process.NewConstant(1.0)
	still := process.NewConstant(0.0)
	p, _ := process.NewBrownian[float64](0, drift, still).Path(4, 1)
	fmt.Println(p)
	// Output: [0, 1, 2, 3]
}
