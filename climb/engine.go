// Package climb - the greedy-descent search loop.
//
// Engine drives the iteration cycle over a tour.State:
//
//	propose → evaluate → accept/commit or reject → notify → converge?
//
// Design:
//   - Proposal policy (fixed per implementation, documented): one uniform
//     random pair of distinct route positions per attempt, drawn from the
//     engine's seeded RNG. Deterministic given Options.Seed.
//   - Acceptance: strict greedy descent, candidate < current − Eps. Ties are
//     rejected to avoid oscillation on plateaus.
//   - Strict sentinels only; no logging; observer calls are synchronous.
//   - Each attempt is O(n): one candidate copy plus one full tour pricing.
//
// Convergence: the run terminates when Options.Patience consecutive attempts
// have been rejected since the last accepted move, or when the MaxIters cap
// is reached. Afterwards Step is a no-op until Restart.
package climb

import (
	"math/rand"

	"github.com/Se7enCodes/tspclimb/tour"
)

// Engine owns a tour.State and walks it downhill. Not safe for concurrent
// use; one engine per goroutine.
type Engine struct {
	opts Options
	obs  Observer // may be nil (headless)
	rng  *rand.Rand

	st        *tour.State
	rejects   int // consecutive rejected attempts since the last accept
	iters     int // attempts in the current run
	converged bool
}

// New validates opts, builds the initial State from a random permutation of
// cities, and returns a Running engine. obs may be nil for headless use.
//
// The same RNG stream (seeded from opts.Seed) feeds both the initial shuffle
// and all subsequent proposals, so a run is fully determined by
// (cities, opts).
//
// Errors: ErrInvalidConfig for out-of-range options; tour.ErrInvalidInput
// for a degenerate city set.
//
// Complexity: O(n) time, O(n) space.
func New(cities []tour.City, opts Options, obs Observer) (*Engine, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	rng := tour.NewRNG(opts.Seed)
	st, err := tour.New(cities, rng)
	if err != nil {
		return nil, err
	}

	return &Engine{opts: opts, obs: obs, rng: rng, st: st}, nil
}

// Step performs one attempt: propose a random 2-opt move, price it, and
// either commit (strictly shorter) or discard it. Returns whether the move
// was accepted.
//
// Once the engine is Converged, Step returns (false, nil) without touching
// the State or the RNG, so a driver loop may keep polling safely.
//
// Complexity: O(n) per call.
func (e *Engine) Step() (bool, error) {
	if e.converged {
		return false, nil
	}

	// Uniform random distinct pair of route positions. Drawing j from n-1
	// values and skipping past i keeps the pair unbiased in one pass.
	n := len(e.st.Route)
	i := e.rng.Intn(n)
	j := e.rng.Intn(n - 1)
	if j >= i {
		j++
	}

	proposed, err := tour.ApplySwap(e.st, i, j)
	if err != nil {
		return false, err
	}
	candidate, err := tour.Distance(e.st.Cities, proposed)
	if err != nil {
		return false, err
	}

	e.iters++

	// Tentative notification before the decision, for edge highlighting.
	if e.opts.HighlightBeforeAccept && e.obs != nil {
		e.obs.OnStep(e.st, i, j, false)
	}

	if candidate < e.st.TotalDistance-e.opts.Eps {
		// Accept: commit is the only State mutation in the loop.
		if err = tour.Commit(e.st, proposed); err != nil {
			return false, err
		}
		e.rejects = 0
		if e.obs != nil {
			e.obs.OnStep(e.st, i, j, true)
		}
		e.maybeConverge()

		return true, nil
	}

	// Reject: state untouched, counter advances toward convergence.
	e.rejects++
	if e.opts.NotifyRejected && !e.opts.HighlightBeforeAccept && e.obs != nil {
		// With HighlightBeforeAccept the tentative call already reported
		// this attempt; avoid a duplicate rejected notification.
		e.obs.OnStep(e.st, i, j, false)
	}
	e.maybeConverge()

	return false, nil
}

// maybeConverge transitions to Converged when the patience threshold or the
// attempt cap is reached, firing OnConverged exactly once per run.
func (e *Engine) maybeConverge() {
	if e.converged {
		return
	}
	if e.rejects < e.opts.Patience && (e.opts.MaxIters == 0 || e.iters < e.opts.MaxIters) {
		return
	}

	e.converged = true
	if e.obs != nil {
		e.obs.OnConverged(e.st, e.iters)
	}
}

// Run iterates Step until the engine converges, then reports the final
// tour. Calling Run on an already-Converged engine returns the current
// result without further attempts.
//
// The returned Route is a copy; the engine's State stays private to it.
func (e *Engine) Run() (Result, error) {
	for !e.converged {
		if _, err := e.Step(); err != nil {
			return Result{}, err
		}
	}

	route := make([]int, len(e.st.Route))
	copy(route, e.st.Route)

	return Result{Route: route, BestDist: e.st.TotalDistance, Iterations: e.iters}, nil
}

// Restart re-initializes the State from a fresh random permutation drawn
// from the engine's RNG stream, resets the counters, and returns to
// Running. The city set and options are kept.
//
// Runs are independent: the engine carries no memory of prior runs beyond
// the advanced RNG stream.
func (e *Engine) Restart() error {
	st, err := tour.New(e.st.Cities, e.rng)
	if err != nil {
		return err
	}

	e.st = st
	e.rejects = 0
	e.iters = 0
	e.converged = false

	return nil
}

// State exposes the engine's live state for observers and tests. Callers
// must treat it as read-only; Commit inside Step is the only writer.
func (e *Engine) State() *tour.State { return e.st }

// Converged reports whether the current run has reached its terminal state.
func (e *Engine) Converged() bool { return e.converged }

// Iterations returns the number of attempts in the current run.
func (e *Engine) Iterations() int { return e.iters }
