package climb

import (
	"errors"

	"github.com/Se7enCodes/tspclimb/tour"
)

// ErrInvalidConfig indicates out-of-range Options: Patience <= 0,
// Eps < 0, or MaxIters < 0.
var ErrInvalidConfig = errors.New("climb: invalid engine configuration")

// Result holds the outcome of a completed run.
type Result struct {
	// Route is the final permutation of city indices (implicitly closed).
	Route []int

	// BestDist is the total length of the final tour.
	BestDist float64

	// Iterations is the number of attempted moves in the run, accepted and
	// rejected alike.
	Iterations int
}

// Observer receives synchronous notifications from the engine. It is the
// seam between the search loop and any rendering or recording concern; the
// engine itself stays headless.
//
// Implementations must treat the provided *tour.State as read-only and
// return quickly (or schedule their own deferred work): every call happens
// inline on the search goroutine.
type Observer interface {
	// OnStep reports one attempted move. i and j are the route positions of
	// the proposed segment reversal. accepted tells whether the state was
	// mutated; when false, st still holds the pre-move route.
	//
	// Delivery policy (see Options): accepted steps are always reported;
	// rejected steps only when NotifyRejected is set; with
	// HighlightBeforeAccept an additional tentative call (accepted=false)
	// precedes the decision, so a renderer can flash the edges under
	// consideration.
	OnStep(st *tour.State, i, j int, accepted bool)

	// OnConverged fires exactly once per run, when the engine transitions
	// to Converged. iterations counts every attempt of the run.
	OnConverged(st *tour.State, iterations int)
}
