// Package tspclimb is a small, deterministic hill-climbing optimizer for the
// Euclidean Travelling Salesman Problem.
//
// 🚀 What is tspclimb?
//
//	A dependency-light library that turns a set of 2D city coordinates into a
//	short closed tour by strict greedy descent over 2-opt moves:
//		• tour/    — the Tour Model: cities, routes, cost, the 2-opt move primitive
//		• climb/   — the Hill-Climbing Engine: propose, evaluate, accept or reject
//		• observe/ — headless observers: run recorder with statistics, zap logging
//
// ✨ Why choose tspclimb?
//
//   - Deterministic – every source of randomness is an injectable, seeded stream
//   - Honest contracts – sentinel errors, no logging or hidden retries in the core
//   - Observable – a narrow two-method Observer keeps rendering concerns out
//   - Pure Go – no cgo; the search core has zero runtime dependencies
//
// The engine performs strict greedy descent: only strictly shorter candidate
// tours are kept, so the tour length is non-increasing over a run and the
// search converges to a local optimum. The final tour depends entirely on the
// initial permutation and the proposal sequence; that sensitivity is the
// documented behavior of hill climbing, not a defect. Use Restart (or several
// seeds) to sample more than one local optimum.
//
// Quick start:
//
//	rng := tour.NewRNG(42)
//	cities, _ := tour.RandomCities(50, rng)
//	eng, _ := climb.New(cities, climb.DefaultOptions(), nil)
//	res, _ := eng.Run()
//	fmt.Printf("best tour length: %.4f after %d attempts\n", res.BestDist, res.Iterations)
package tspclimb
