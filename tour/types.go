// SPDX-License-Identifier: MIT

package tour

import "errors"

// Sentinel errors returned by the Tour Model.
var (
	// ErrInvalidInput indicates a degenerate city set: nil, empty, or a
	// single city. A closed tour is undefined below two cities.
	ErrInvalidInput = errors.New("tour: at least two cities required")

	// ErrInvalidMove indicates malformed swap positions (out of range or
	// equal) or a proposed route that is not a permutation of the city set.
	ErrInvalidMove = errors.New("tour: invalid move")
)

// City is an immutable 2D point. Cities are identified by their index in the
// city slice; the index is stable for the lifetime of a run.
type City struct {
	X, Y float64
}

// State owns the current route and its cached total distance.
//
// Invariants (hold after construction and after every Commit):
//   - Route is a permutation of 0..len(Cities)-1, implicitly closed.
//   - TotalDistance == Distance(Cities, Route).
//
// A State is exclusively owned by a single engine for the duration of a run;
// concurrent mutation is not supported. Observers receive the live *State and
// must treat it as read-only.
type State struct {
	// Cities is the immutable coordinate set. Callers must not modify it
	// after construction.
	Cities []City

	// Route is the current open permutation of city indices. The closing
	// edge Route[n-1] → Route[0] is implicit.
	Route []int

	// TotalDistance caches Distance(Cities, Route). Maintained by Commit.
	TotalDistance float64
}
