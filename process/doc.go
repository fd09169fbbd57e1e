// Package process generates discrete paths of simple stochastic processes.
//
// A Process produces a path of a requested length from a seed. Three variants
// are provided:
//
//   - Constant:  every step equals the initial value.
//   - Brownian:  p[i] = p[i-1] + μ[i] + σ[i]·dB[i].
//   - Geometric: Milstein step of geometric Brownian motion,
//     p[i] = p[i-1] + μ[i]·p[i-1] + σ[i]·p[i-1]·dB[i] + ½·σ[i]²·p[i-1]·(dB[i]² - 1).
//
// The drift μ and volatility σ of Brownian and Geometric are themselves
// processes, composed by value, and are sampled with seeds seed+1 and seed+2.
// dB are standard normal draws from a math/rand source seeded with seed, so a
// (process, steps, seed) triple always yields the same path.
//
// Paths are returned as *matrix.Vector values: path(1) is the initial value.
package process
