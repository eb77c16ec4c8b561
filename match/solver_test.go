package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tda/persistence"
)

// TestSolveAssignment_Known checks the exact optimum on a hand-solved 3×3
// instance.
func TestSolveAssignment_Known(t *testing.T) {
	cost := mat.NewDense(3, 3, []float64{
		4, 1, 3,
		2, 0, 5,
		3, 2, 2,
	})

	rowMatch, total := solveAssignment(cost)
	assert.Equal(t, 5.0, total, "optimum is 1+2+2")
	assert.Equal(t, []int{1, 0, 2}, rowMatch)
}

// TestSolveAssignment_Permutation verifies the result is always a
// permutation (perfect assignment), including on a matrix with heavy ties.
func TestSolveAssignment_Permutation(t *testing.T) {
	cost := mat.NewDense(4, 4, []float64{
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 1, 1, 1,
		1, 1, 1, 1,
	})

	rowMatch, total := solveAssignment(cost)
	assert.Equal(t, 2.0, total)
	seen := make(map[int]bool, 4)
	for _, j := range rowMatch {
		assert.False(t, seen[j], "column %d assigned twice", j)
		seen[j] = true
	}
}

// TestThresholdMatching_Feasibility checks the perfect-matching test at a
// feasible and an infeasible limit on the same matrix.
func TestThresholdMatching_Feasibility(t *testing.T) {
	cost := mat.NewDense(3, 3, []float64{
		4, 1, 3,
		2, 0, 5,
		3, 2, 2,
	})

	rowMatch, ok := thresholdMatching(cost, 2)
	require.True(t, ok, "limit 2 admits 0→1, 1→0, 2→2")
	assert.Equal(t, []int{1, 0, 2}, rowMatch)

	_, ok = thresholdMatching(cost, 1)
	assert.False(t, ok, "row 2 has no edge of cost ≤ 1")
}

// TestCostMatrix_Blocks verifies the augmented block layout: ground costs,
// per-row/per-column diagonal costs, and the zero padding block.
func TestCostMatrix_Blocks(t *testing.T) {
	a := persistence.Diagram{{Birth: 0, Death: 2}}
	b := persistence.Diagram{{Birth: 1, Death: 3}, {Birth: 0, Death: 8}}

	c := costMatrix(a, b, Chebyshev, 1)
	r, cols := c.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, cols)

	assert.Equal(t, 1.0, c.At(0, 0), "ground(a0,b0) = max(1,1)")
	assert.Equal(t, 6.0, c.At(0, 1), "ground(a0,b1) = max(0,6)")
	assert.Equal(t, 1.0, c.At(0, 2), "diagonal cost of a0 = (2-0)/2")
	assert.Equal(t, 1.0, c.At(1, 0), "diagonal cost of b0 = (3-1)/2")
	assert.Equal(t, 4.0, c.At(2, 1), "diagonal cost of b1 = (8-0)/2")
	assert.Equal(t, 0.0, c.At(1, 2), "padding block is free")
	assert.Equal(t, 0.0, c.At(2, 2), "padding block is free")
}

// TestCostMatrix_Power verifies entries are raised to p for Wasserstein.
func TestCostMatrix_Power(t *testing.T) {
	a := persistence.Diagram{{Birth: 0, Death: 6}}
	b := persistence.Diagram{}

	c := costMatrix(a, b, Chebyshev, 2)
	assert.Equal(t, 9.0, c.At(0, 0), "diagonal cost 3 squared")
}

// TestToMatching_DropsPadding verifies padding-to-padding pairs are omitted
// and diagonal markers are placed on the right side.
func TestToMatching_DropsPadding(t *testing.T) {
	// nA=1, nB=1, s=2: row 0 = a0, row 1 = padding; col 0 = b0, col 1 = padding.
	m := toMatching([]int{1, 0}, 1, 1)
	assert.Equal(t, Matching{{A: 0, B: Diagonal}, {A: Diagonal, B: 0}}, m)

	m = toMatching([]int{0, 1}, 1, 1)
	assert.Equal(t, Matching{{A: 0, B: 0}}, m, "padding-to-padding omitted")
}
