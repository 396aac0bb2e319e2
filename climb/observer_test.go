// Package climb_test - observer delivery policies.
package climb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Se7enCodes/tspclimb/climb"
	"github.com/Se7enCodes/tspclimb/tour"
)

// counter tallies deliveries without inspecting state.
type counter struct {
	accepted  int
	tentative int
	converged int
}

func (c *counter) OnStep(_ *tour.State, _, _ int, accepted bool) {
	if accepted {
		c.accepted++

		return
	}
	c.tentative++
}

func (c *counter) OnConverged(_ *tour.State, _ int) { c.converged++ }

func runWith(t *testing.T, opts climb.Options) (*counter, climb.Result) {
	t.Helper()

	cities, err := tour.RandomCities(20, tour.NewRNG(4))
	require.NoError(t, err)

	c := &counter{}
	eng, err := climb.New(cities, opts, c)
	require.NoError(t, err)

	res, err := eng.Run()
	require.NoError(t, err)

	return c, res
}

// TestDeliveryDefault: only accepted moves are reported.
func TestDeliveryDefault(t *testing.T) {
	opts := climb.DefaultOptions()
	opts.Seed = 17
	opts.Patience = 200

	c, res := runWith(t, opts)
	require.Zero(t, c.tentative)
	require.Greater(t, c.accepted, 0)
	require.Less(t, c.accepted, res.Iterations)
	require.Equal(t, 1, c.converged)
}

// TestDeliveryNotifyRejected: every attempt is reported exactly once.
func TestDeliveryNotifyRejected(t *testing.T) {
	opts := climb.DefaultOptions()
	opts.Seed = 17
	opts.Patience = 200
	opts.NotifyRejected = true

	c, res := runWith(t, opts)
	require.Equal(t, res.Iterations, c.accepted+c.tentative)
	require.Equal(t, 1, c.converged)
}

// TestDeliveryHighlight: every attempt gets a tentative call before the
// decision; accepted attempts get a second, accepted call. Combining with
// NotifyRejected must not double-report rejections.
func TestDeliveryHighlight(t *testing.T) {
	opts := climb.DefaultOptions()
	opts.Seed = 17
	opts.Patience = 200
	opts.HighlightBeforeAccept = true

	c, res := runWith(t, opts)
	require.Equal(t, res.Iterations, c.tentative, "one tentative call per attempt")
	require.Greater(t, c.accepted, 0)

	opts.NotifyRejected = true
	c2, res2 := runWith(t, opts)
	require.Equal(t, res2.Iterations, c2.tentative)
	require.Equal(t, c.accepted, c2.accepted)
}
