// Package observe_test exercises the run recorder against live engine runs:
// history shape, best/improvement bookkeeping, the local-optima registry,
// and summary statistics.
package observe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Se7enCodes/tspclimb/climb"
	"github.com/Se7enCodes/tspclimb/observe"
	"github.com/Se7enCodes/tspclimb/tour"
)

// attach builds a deterministic engine and a recorder seeded with its
// initial state. Engine construction is repeated so the recorder can observe
// the very first state: two News with the same seed shuffle identically.
func attach(t *testing.T, n int, seed int64) (*climb.Engine, *observe.Recorder) {
	t.Helper()

	cities, err := tour.RandomCities(n, tour.NewRNG(seed))
	require.NoError(t, err)

	opts := climb.DefaultOptions()
	opts.Seed = seed
	opts.Patience = 200

	probe, err := climb.New(cities, opts, nil)
	require.NoError(t, err)
	rec := observe.NewRecorder(probe.State())

	eng, err := climb.New(cities, opts, rec)
	require.NoError(t, err)
	require.Equal(t, probe.State().Route, eng.State().Route)

	return eng, rec
}

// TestRecorderHistory: the history starts at the initial length and each
// accepted move appends a strictly smaller value.
func TestRecorderHistory(t *testing.T) {
	eng, rec := attach(t, 30, 8)

	res, err := eng.Run()
	require.NoError(t, err)

	require.Equal(t, rec.Initial(), rec.History[0])
	require.Equal(t, res.BestDist, rec.Best())
	require.Equal(t, res.BestDist, rec.History[len(rec.History)-1])
	require.Equal(t, rec.Accepted+1, len(rec.History))

	for i := 1; i < len(rec.History); i++ {
		require.Less(t, rec.History[i], rec.History[i-1], "accepted lengths strictly decrease")
	}

	require.GreaterOrEqual(t, rec.ImprovementPct(), 0.0)
	require.Equal(t, 1, rec.Runs)
}

// TestRecorderLocalOptima: one optimum per run, deduplicated when restarts
// land on the same length; IsGlobalBest flags the best registry entry.
func TestRecorderLocalOptima(t *testing.T) {
	eng, rec := attach(t, 12, 31)

	_, err := eng.Run()
	require.NoError(t, err)
	require.Len(t, rec.LocalOptima, 1)
	require.True(t, rec.IsGlobalBest(rec.LocalOptima[0]))

	require.NoError(t, eng.Restart())
	_, err = eng.Run()
	require.NoError(t, err)

	require.Equal(t, 2, rec.Runs)
	require.LessOrEqual(t, len(rec.LocalOptima), 2, "identical optima collapse in the registry")

	best := rec.LocalOptima[0]
	for _, d := range rec.LocalOptima[1:] {
		if d < best {
			best = d
		}
	}
	require.True(t, rec.IsGlobalBest(best))
	if len(rec.LocalOptima) == 2 {
		worst := rec.LocalOptima[0]
		if rec.LocalOptima[1] > worst {
			worst = rec.LocalOptima[1]
		}
		if worst != best {
			require.False(t, rec.IsGlobalBest(worst))
		}
	}
}

// TestRecorderSummary: summary statistics agree with the recorded history.
func TestRecorderSummary(t *testing.T) {
	eng, rec := attach(t, 20, 13)

	res, err := eng.Run()
	require.NoError(t, err)

	sum, err := rec.Summarize()
	require.NoError(t, err)
	require.Equal(t, res.BestDist, sum.Min)
	require.Equal(t, rec.Initial(), sum.Max, "greedy descent never exceeds the start")
	require.GreaterOrEqual(t, sum.Mean, sum.Min)
	require.LessOrEqual(t, sum.Mean, sum.Max)
	require.GreaterOrEqual(t, sum.Median, sum.Min)
	require.LessOrEqual(t, sum.Median, sum.Max)

	_, err = observe.NewRecorder(nil).Summarize()
	require.Error(t, err, "empty history has no statistics")
}

// TestRecorderSeededFromState covers the plain constructor path.
func TestRecorderSeededFromState(t *testing.T) {
	cities, err := tour.RandomCities(10, tour.NewRNG(3))
	require.NoError(t, err)
	st, err := tour.New(cities, tour.NewRNG(3))
	require.NoError(t, err)

	rec := observe.NewRecorder(st)
	require.Equal(t, st.TotalDistance, rec.Initial())
	require.Equal(t, []float64{st.TotalDistance}, rec.History)
	require.Equal(t, st.TotalDistance, rec.Best())
}
