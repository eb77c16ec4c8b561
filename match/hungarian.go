package match

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// solveAssignment finds the minimum-cost perfect matching on the square
// cost matrix using the Jonker–Volgenant formulation of the Hungarian
// method: one shortest-augmenting-path search per row over the reduced
// costs, maintaining dual potentials u (rows) and v (columns).
//
// Steps, per row i:
//  1. Start an alternating search tree at i (column 0 of the 1-based
//     bookkeeping arrays acts as the virtual root).
//  2. Repeatedly scan unvisited columns for the smallest reduced cost
//     cost[i0][j] − u[i0] − v[j], recording the tree predecessor in way.
//  3. Apply the dual update delta to keep all reduced costs non-negative,
//     then step to the minimizing column; stop when it is unmatched.
//  4. Walk way back to the root, flipping matched edges along the path.
//
// The search terminates after exactly s augmentations with the exact
// optimum — there is no iteration cap to tune and no approximate exit.
//
// Returns rowMatch (row → assigned column) and the total assignment cost.
//
// Determinism: ties in the delta scan resolve to the lowest column index,
// so identical inputs yield identical assignments.
//
// Complexity:
//
//	Time:   O(s³)
//	Memory: O(s)
func solveAssignment(cost *mat.Dense) ([]int, float64) {
	s, _ := cost.Dims()
	inf := math.Inf(1)

	// 1-based arrays: index 0 is the virtual root column.
	u := make([]float64, s+1) // row potentials
	v := make([]float64, s+1) // column potentials
	p := make([]int, s+1)     // p[j] = row currently matched to column j (0 = free)
	way := make([]int, s+1)   // way[j] = predecessor column in the search tree
	minv := make([]float64, s+1)
	used := make([]bool, s+1)

	for i := 1; i <= s; i++ {
		p[0] = i
		j0 := 0
		for j := 0; j <= s; j++ {
			minv[j] = inf
			used[j] = false
		}

		// Grow the alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := 0
			for j := 1; j <= s; j++ {
				if used[j] {
					continue
				}
				cur := cost.At(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			// Dual update keeps reduced costs non-negative.
			for j := 0; j <= s; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment: flip matched edges along the alternating path.
		for {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
			if j0 == 0 {
				break
			}
		}
	}

	rowMatch := make([]int, s)
	total := 0.0
	for j := 1; j <= s; j++ {
		rowMatch[p[j]-1] = j - 1
		total += cost.At(p[j]-1, j-1)
	}

	return rowMatch, total
}
