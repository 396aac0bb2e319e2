// Package climb implements the hill-climbing engine: it proposes random
// 2-opt moves against a tour.State, keeps only strictly improving ones, and
// declares convergence once a configured number of consecutive proposals has
// been rejected.
//
// State machine:
//
//	– Running:   each Step draws one uniform random pair of route positions
//	             from the engine's seeded RNG, prices the reversed candidate,
//	             and either commits it (strictly shorter) or discards it.
//	– Converged: terminal for a run; reached after Options.Patience
//	             consecutive rejections (or the MaxIters cap). The engine
//	             never mutates its State afterwards.
//	– Restart:   re-seeds the State from a fresh random permutation and
//	             returns to Running; each run is otherwise independent.
//
// Acceptance is strict greedy descent (candidate < current − Eps, ties
// rejected), so the tour length is non-increasing over a run, bounded below
// by zero, and the sequence of accepted lengths converges. The final length
// depends entirely on the initial permutation and the proposal sequence;
// this sensitivity to the seed is documented behavior, not a defect.
//
// Concurrency: the engine is single-threaded by contract. It exclusively
// owns its State for the duration of a run and invokes the Observer
// synchronously on the caller's goroutine; observers must be fast or defer
// their own work.
//
// Errors (sentinel):
//
//	– ErrInvalidConfig      for a non-positive patience, negative Eps, or
//	                        negative MaxIters.
//	– tour.ErrInvalidInput  propagated when the city set is degenerate.
package climb
