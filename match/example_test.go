package match_test

import (
	"fmt"

	"github.com/katalvlaran/tda/match"
	"github.com/katalvlaran/tda/persistence"
)

// ExampleBottleneck compares a one-point diagram with the empty diagram:
// the point is destroyed against the diagonal at half its persistence.
func ExampleBottleneck() {
	a := persistence.Diagram{{Birth: 0, Death: 1}}
	b := persistence.Diagram{}

	dist, matching, err := match.Bottleneck(a, b, nil)
	if err != nil {
		fmt.Println("match failed:", err)
		return
	}

	fmt.Println("distance:", dist)
	fmt.Println("matching:", matching) // -1 marks the diagonal

	// Output:
	// distance: 0.5
	// matching: [{0 -1}]
}

// ExampleWasserstein shows that matching two nearby points beats destroying
// both: the optimal transport pairs them at ground cost 1.
func ExampleWasserstein() {
	a := persistence.Diagram{{Birth: 0, Death: 2}}
	b := persistence.Diagram{{Birth: 1, Death: 3}}

	dist, matching, err := match.Wasserstein(a, b, 1, nil)
	if err != nil {
		fmt.Println("match failed:", err)
		return
	}

	fmt.Println("distance:", dist)
	fmt.Println("matching:", matching)

	// Output:
	// distance: 1
	// matching: [{0 0}]
}
