// Package observe - run recorder.
//
// Recorder mirrors, headlessly, the counters a visual front end would show:
// the distance-over-time series, best distance so far, attempt/accept
// counts, overall improvement, and the registry of distinct local optima
// across restarts. Summary statistics are computed with montanaflynn/stats.
package observe

import (
	"github.com/montanaflynn/stats"

	"github.com/Se7enCodes/tspclimb/tour"
)

// optimumTol is the tolerance under which two local-optimum distances are
// considered the same optimum when deduplicating the registry.
const optimumTol = 1e-6

// Recorder accumulates the observable trace of one or more runs. It is not
// safe for concurrent use; attach one recorder per engine.
type Recorder struct {
	// History holds the initial tour length followed by the length after
	// every accepted move, across all runs since construction. Within a
	// single run the accepted suffix is strictly decreasing.
	History []float64

	// Attempts and Accepted count every OnStep delivery and the accepted
	// subset. With the engine's default delivery policy (accepted only),
	// Attempts == Accepted.
	Attempts int
	Accepted int

	// LocalOptima is the registry of distinct converged tour lengths,
	// deduplicated within optimumTol, in discovery order.
	LocalOptima []float64

	// Runs counts OnConverged deliveries.
	Runs int

	initial float64
	best    float64
}

// NewRecorder seeds the recorder with the engine's starting state, so the
// history begins at the initial tour length and improvement is measured
// against it.
func NewRecorder(st *tour.State) *Recorder {
	r := &Recorder{}
	if st != nil {
		r.initial = st.TotalDistance
		r.best = st.TotalDistance
		r.History = append(r.History, st.TotalDistance)
	}

	return r
}

// OnStep implements climb.Observer.
func (r *Recorder) OnStep(st *tour.State, _, _ int, accepted bool) {
	r.Attempts++
	if !accepted {
		return
	}

	r.Accepted++
	r.History = append(r.History, st.TotalDistance)
	if st.TotalDistance < r.best {
		r.best = st.TotalDistance
	}
}

// OnConverged implements climb.Observer: it files the converged tour length
// into the local-optima registry unless an equal one (within optimumTol) is
// already recorded.
func (r *Recorder) OnConverged(st *tour.State, _ int) {
	r.Runs++

	d := st.TotalDistance
	for _, seen := range r.LocalOptima {
		diff := d - seen
		if diff < 0 {
			diff = -diff
		}
		if diff < optimumTol {
			return
		}
	}
	r.LocalOptima = append(r.LocalOptima, d)
}

// Best returns the shortest tour length observed so far.
func (r *Recorder) Best() float64 { return r.best }

// Initial returns the tour length the recorder was seeded with.
func (r *Recorder) Initial() float64 { return r.initial }

// ImprovementPct returns the overall improvement of Best over Initial, in
// percent. Zero when nothing was observed yet or the initial length is zero.
func (r *Recorder) ImprovementPct() float64 {
	if r.initial == 0 {
		return 0
	}

	return (r.initial - r.best) / r.initial * 100
}

// IsGlobalBest reports whether d is strictly better than every other
// recorded local optimum - the "best optimum found so far within this
// process", not a claim of true global optimality.
func (r *Recorder) IsGlobalBest(d float64) bool {
	for _, seen := range r.LocalOptima {
		if seen < d {
			return false
		}
	}

	return true
}

// Summary condenses the recorded history.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Summarize computes summary statistics over the full distance history.
// Returns an error only when the history is empty.
func (r *Recorder) Summarize() (Summary, error) {
	data := stats.Float64Data(r.History)

	min, err := data.Min()
	if err != nil {
		return Summary{}, err
	}
	max, err := data.Max()
	if err != nil {
		return Summary{}, err
	}
	mean, err := data.Mean()
	if err != nil {
		return Summary{}, err
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, err
	}

	return Summary{Min: min, Max: max, Mean: mean, Median: median}, nil
}
