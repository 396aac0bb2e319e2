// Package tour - cost utilities for closed routes.
//
// This file provides the pure tour-length function used everywhere a route is
// priced: baseline cost at construction, candidate evaluation in the engine,
// and cache refresh on Commit.
//
// Design:
//   - Exact per-edge formula sqrt(dx²+dy²); no fast approximations, so cost
//     comparisons are bit-for-bit reproducible across runs.
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity: O(n) time for a route of length n, O(1) extra space.
package tour

import "math"

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting which of two
// routes is shorter.
const roundScale = 1e9

// Distance returns the total length of the closed tour described by route
// over cities: the sum of Euclidean distances between consecutive cities plus
// the closing edge from the last city back to the first.
//
// Pure function, no side effects. Each edge is priced as
// sqrt((x1-x2)² + (y1-y2)²) and the sum is stabilized via round1e9.
//
// Contract:
//   - len(cities) >= 2 and len(route) == len(cities), else ErrInvalidInput.
//   - every route element within [0..n-1], else ErrInvalidMove.
//
// Duplicate indices are not detected here (that is ValidatePermutation's
// job); a duplicated index still prices a well-defined closed walk.
//
// Complexity: O(n).
func Distance(cities []City, route []int) (float64, error) {
	n := len(cities)
	if n < 2 {
		return 0, ErrInvalidInput
	}
	if len(route) != n {
		return 0, ErrInvalidMove
	}

	var (
		sum  float64
		i, u int
		v    int
	)
	for i = 0; i < n; i++ {
		u = route[i]
		v = route[(i+1)%n] // closing edge when i == n-1

		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrInvalidMove
		}
		sum += edgeLength(cities[u], cities[v])
	}

	return round1e9(sum), nil
}

// edgeLength prices a single edge between two cities with the exact
// Euclidean formula.
//
// Complexity: O(1).
func edgeLength(a, b City) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps cached and recomputed costs identical across platforms.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
