// SPDX-License-Identifier: MIT

package process

import (
	"fmt"

	"github.com/katalvlaran/minila/matrix"
)

// Ensemble draws n independent paths of p as the rows of an n×steps matrix.
// Row r uses the seed derived from (seed, r), so the ensemble is reproducible
// and rows are decorrelated.
// Errors: ErrNilProcess, ErrInvalidPaths, and any Path error.
// Complexity: O(n·steps).
func Ensemble[T matrix.Float](p Process[T], n, steps int, seed int64) (*matrix.Matrix[T], error) {
	if p == nil {
		return nil, fmt.Errorf("Ensemble: %w", ErrNilProcess)
	}
	if n < 1 {
		return nil, fmt.Errorf("Ensemble: n=%d: %w", n, ErrInvalidPaths)
	}
	if err := validateSteps("Ensemble", steps); err != nil {
		return nil, err
	}
	out, err := matrix.NewMatrix[T](n, steps)
	if err != nil {
		return nil, fmt.Errorf("Ensemble: %w", err)
	}
	data := out.Data()
	for r := 0; r < n; r++ {
		path, err := p.Path(steps, deriveSeed(seed, uint64(r)))
		if err != nil {
			return nil, fmt.Errorf("Ensemble: row %d: %w", r+1, err)
		}
		copy(data[r*steps:(r+1)*steps], path.Data())
	}

	return out, nil
}

// Mean returns the per-step average of the ensemble rows.
// Errors: ErrNilArray, ErrInvalidShape for an empty ensemble.
func Mean[T matrix.Float](ens *matrix.Matrix[T]) (*matrix.Vector[T], error) {
	m, err := matrix.ColumnMeans(ens)
	if err != nil {
		return nil, fmt.Errorf("Mean: %w", err)
	}

	return m, nil
}
