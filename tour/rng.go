// Package tour - RNG utilities shared by the model and the engine.
//
// This file centralizes deterministic random generation:
//   - Determinism: same seed ⇒ identical permutations and instances.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Safety: no panics, no logging; only sentinel errors from types.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; create one stream per engine.
package tour

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for the given seed.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, the default deterministic stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = NewRNG(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomPerm returns a permutation of 0..n-1 generated deterministically
// from rng. The allocation is required by contract (the returned slice).
//
// Complexity: O(n) time, O(n) space.
func randomPerm(n int, rng *rand.Rand) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleInPlace(p, rng)

	return p
}

// RandomCities returns n cities drawn uniformly from the unit square [0,1)².
// The instance is fully determined by rng, so a fixed seed reproduces the
// exact coordinate set. Returns ErrInvalidInput for n < 2 (a tour is
// undefined below two cities).
//
// Complexity: O(n) time, O(n) space.
func RandomCities(n int, rng *rand.Rand) ([]City, error) {
	if n < 2 {
		return nil, ErrInvalidInput
	}

	r := rng
	if r == nil {
		r = NewRNG(0)
	}

	out := make([]City, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = City{X: r.Float64(), Y: r.Float64()}
	}

	return out, nil
}
