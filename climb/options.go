// SPDX-License-Identifier: MIT

// Package climb - engine configuration.
//
// This file defines the Options value struct, the documented defaults
// (constants, single source of truth), and standalone validation. Options
// are plain values: copy them, tweak a field, pass them to New. Validation
// happens once, in New; a constructed engine never re-checks its knobs.
package climb

// DEFAULTS - these constants MUST reflect the zero-config behavior of
// DefaultOptions.
const (
	// DefaultPatience is the number of consecutive rejected proposals after
	// which the engine declares a local optimum.
	DefaultPatience = 50

	// DefaultEps is the acceptance tolerance: a candidate must be shorter
	// than current − Eps to be kept. 0 means plain strict improvement.
	DefaultEps = 0.0
)

// Options configures a hill-climbing run.
type Options struct {
	// Patience is the consecutive-rejection threshold before declaring
	// convergence. Must be positive.
	Patience int

	// Seed drives both the initial permutation and every move proposal.
	// Policy: 0 selects a fixed default stream (runs stay reproducible
	// even when the caller does not care about the seed).
	Seed int64

	// Eps is the strict-improvement tolerance: accept when
	// candidate < current − Eps. Must be non-negative. A positive Eps
	// trades tour quality for earlier convergence on near-plateaus.
	Eps float64

	// MaxIters caps the total number of attempts per run; 0 means
	// unlimited (the run ends via Patience). Must be non-negative.
	// Reaching the cap transitions to Converged like patience exhaustion.
	MaxIters int

	// NotifyRejected extends OnStep delivery to rejected attempts, so an
	// observer sees every iteration rather than only accepted mutations.
	NotifyRejected bool

	// HighlightBeforeAccept adds a tentative OnStep (accepted=false) before
	// the accept/reject decision of every attempt, letting a renderer flash
	// the two edges under consideration.
	HighlightBeforeAccept bool
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Patience: DefaultPatience,
		Eps:      DefaultEps,
	}
}

// validateOptions checks internal consistency of Options without touching
// city data. Only ErrInvalidConfig is returned; the offending field is a
// programmer-facing concern, not a runtime one.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// A non-positive patience would converge before the first proposal.
	if opts.Patience <= 0 {
		return ErrInvalidConfig
	}
	// A negative epsilon would invert the acceptance rule and break the
	// monotonic-descent guarantee.
	if opts.Eps < 0 {
		return ErrInvalidConfig
	}
	// Attempt cap must be non-negative (0 ⇒ unlimited).
	if opts.MaxIters < 0 {
		return ErrInvalidConfig
	}

	return nil
}
