package pairwise_test

import (
	"fmt"

	"github.com/katalvlaran/tda/pairwise"
	"github.com/katalvlaran/tda/persistence"
)

// ExampleMatrix builds the Bottleneck distance matrix of three small
// diagrams.
func ExampleMatrix() {
	diagrams := []persistence.Diagram{
		{{Birth: 0, Death: 1}},
		{{Birth: 0, Death: 2}},
		{},
	}

	opts := pairwise.DefaultOptions()
	opts.Workers = 1

	dm, err := pairwise.Matrix(diagrams, &opts)
	if err != nil {
		fmt.Println("batch failed:", err)
		return
	}

	n := dm.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%.1f", dm.At(i, j))
		}
		fmt.Println()
	}

	// Output:
	// 0.0 1.0 0.5
	// 1.0 0.0 1.0
	// 0.5 1.0 0.0
}
