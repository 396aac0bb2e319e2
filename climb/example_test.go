package climb_test

import (
	"fmt"

	"github.com/Se7enCodes/tspclimb/climb"
	"github.com/Se7enCodes/tspclimb/tour"
)

// Example runs the hill climber on the unit square. Whatever the random
// starting permutation, strict 2-opt descent ends on the perimeter tour of
// length exactly 4.
func Example() {
	cities := []tour.City{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

	opts := climb.DefaultOptions()
	opts.Seed = 42
	opts.Patience = 500

	eng, err := climb.New(cities, opts, nil)
	if err != nil {
		fmt.Println("setup:", err)

		return
	}

	res, err := eng.Run()
	if err != nil {
		fmt.Println("run:", err)

		return
	}

	fmt.Printf("best tour length: %.1f\n", res.BestDist)
	// Output:
	// best tour length: 4.0
}
