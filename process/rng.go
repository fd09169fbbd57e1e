// SPDX-License-Identifier: MIT

// Package process - RNG utilities shared by all path generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every Path call builds its own.
package process

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand seeded verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// normals returns steps standard normal draws from the stream seeded by seed.
// Complexity: O(steps).
func normals(steps int, seed int64) []float64 {
	r := rngFromSeed(seed)
	out := make([]float64, steps)
	for i := range out {
		out[i] = r.NormFloat64()
	}

	return out
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed (SplitMix64 finalizer), giving decorrelated per-path streams.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
