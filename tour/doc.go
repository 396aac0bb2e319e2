// Package tour implements the Tour Model: city coordinates, route
// permutations, Euclidean tour cost, and the reversible 2-opt move primitive
// that the hill-climbing engine builds on.
//
// Data model:
//
//	– City:  an immutable 2D point (X, Y), identified by its index in the
//	         city set; the index is stable for the lifetime of a run.
//	– Route: an open permutation of 0..n-1 over city indices. The tour is
//	         implicitly closed: the last city connects back to the first.
//	– State: the current Route plus a cached TotalDistance. The cache always
//	         equals Distance(Cities, Route); Commit is the only mutator.
//
// Operations:
//
//	– New / NewWithRoute:  build a State from a random or explicit permutation.
//	– Distance:            pure closed-tour length, sqrt(dx²+dy²) per edge.
//	– ApplySwap:           candidate route with the segment between two
//	                       positions reversed (2-opt); never mutates.
//	– Commit:              swap in a validated route and refresh the cache.
//	– RandomCities:        uniform instance in the unit square.
//
// Randomness is always an explicit *rand.Rand parameter (see NewRNG); the
// package never reads global or time-based entropy, so identical seeds
// reproduce identical states.
//
// Errors (sentinel):
//
//	– ErrInvalidInput if the city set is degenerate (nil or fewer than 2).
//	– ErrInvalidMove  if swap positions or a proposed route are malformed.
package tour
