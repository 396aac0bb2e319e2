package observe

import (
	"github.com/Se7enCodes/tspclimb/climb"
	"github.com/Se7enCodes/tspclimb/tour"
)

// Multi fans every notification out to each member, in order. Useful when a
// run should feed a Recorder and a Logger at once.
type Multi []climb.Observer

// OnStep implements climb.Observer.
func (m Multi) OnStep(st *tour.State, i, j int, accepted bool) {
	for _, obs := range m {
		obs.OnStep(st, i, j, accepted)
	}
}

// OnConverged implements climb.Observer.
func (m Multi) OnConverged(st *tour.State, iterations int) {
	for _, obs := range m {
		obs.OnConverged(st, iterations)
	}
}
