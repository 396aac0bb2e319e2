// Package tour - State construction and the 2-opt move primitive.
//
// Provided operations:
//   - New:                 State from a random permutation of all cities.
//   - NewWithRoute:        State from an explicit permutation.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - ApplySwap:           candidate route with segment [lo..hi] reversed.
//   - Commit:              the sole State mutator; refreshes the cost cache.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from
//     types.go.
//   - ApplySwap never mutates; Commit either fully succeeds or leaves the
//     State untouched. There is no partial-failure state.
//   - Deterministic behavior with explicit pre/post-conditions.
package tour

import "math/rand"

// New builds a State whose Route is a random permutation of all city
// indices, drawn from rng (nil ⇒ the default deterministic stream). The
// cached TotalDistance is computed from scratch.
//
// Returns ErrInvalidInput if cities holds fewer than 2 entries.
//
// New is re-callable: a restart is simply a fresh State from the same city
// set and the caller's RNG stream.
//
// Complexity: O(n) time, O(n) space.
func New(cities []City, rng *rand.Rand) (*State, error) {
	if len(cities) < 2 {
		return nil, ErrInvalidInput
	}

	route := randomPerm(len(cities), rng)
	d, err := Distance(cities, route)
	if err != nil {
		return nil, err
	}

	return &State{Cities: cities, Route: route, TotalDistance: d}, nil
}

// NewWithRoute builds a State from an explicit permutation, for reproducing
// known starting points in tests and benchmarks. The route is copied so the
// caller's slice stays independent.
//
// Returns ErrInvalidInput for a degenerate city set and ErrInvalidMove if
// route is not a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func NewWithRoute(cities []City, route []int) (*State, error) {
	if len(cities) < 2 {
		return nil, ErrInvalidInput
	}
	if err := ValidatePermutation(route, len(cities)); err != nil {
		return nil, err
	}

	cp := make([]int, len(route))
	copy(cp, route)

	d, err := Distance(cities, cp)
	if err != nil {
		return nil, err
	}

	return &State{Cities: cities, Route: cp, TotalDistance: d}, nil
}

// ValidatePermutation checks that route is a permutation of {0..n-1} of
// length n. It allocates a single O(n) marker slice.
//
// Returns ErrInvalidMove on any violation (wrong length, out-of-range
// element, duplicate).
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(route []int, n int) error {
	if n <= 0 || len(route) != n {
		return ErrInvalidMove
	}

	seen := make([]bool, n)

	var i, v int
	for i = 0; i < n; i++ {
		v = route[i]
		if v < 0 || v >= n {
			return ErrInvalidMove
		}
		if seen[v] {
			return ErrInvalidMove
		}
		seen[v] = true
	}

	return nil
}

// ApplySwap returns a new candidate route equal to st.Route with the
// inclusive segment between positions i and j reversed - a 2-opt move.
//
// Policy (documented, applied consistently): the endpoints are sorted, so
// ApplySwap(st, i, j) == ApplySwap(st, j, i), and the whole segment
// [min..max] is reversed rather than only the two endpoints exchanged.
// Adjacent positions degenerate to a plain exchange.
//
// st is never mutated; the returned slice is freshly allocated.
//
// Contract: 0 <= i, j < n and i != j, else ErrInvalidMove.
//
// Complexity: O(n) time, O(n) space (the candidate copy).
func ApplySwap(st *State, i, j int) ([]int, error) {
	if st == nil {
		return nil, ErrInvalidInput
	}

	n := len(st.Route)
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		return nil, ErrInvalidMove
	}

	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}

	out := make([]int, n)
	copy(out, st.Route)
	for lo < hi {
		out[lo], out[hi] = out[hi], out[lo]
		lo++
		hi--
	}

	return out, nil
}

// Commit replaces st.Route with route and refreshes the cached
// TotalDistance from scratch. It is the only mutator of State; on error the
// State is left unchanged.
//
// Commit takes ownership of route (candidates from ApplySwap are already
// fresh allocations); callers must not retain or modify it afterwards.
//
// Returns ErrInvalidMove if route is not a permutation of the city indices.
//
// Complexity: O(n) time, O(n) space (permutation check).
func Commit(st *State, route []int) error {
	if st == nil {
		return ErrInvalidInput
	}
	if err := ValidatePermutation(route, len(st.Cities)); err != nil {
		return err
	}

	d, err := Distance(st.Cities, route)
	if err != nil {
		return err
	}

	st.Route = route
	st.TotalDistance = d

	return nil
}
