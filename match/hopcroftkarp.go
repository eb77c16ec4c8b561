package match

import "gonum.org/v1/gonum/mat"

// unmatched marks a free vertex in the Hopcroft–Karp bookkeeping arrays.
const unmatched = -1

// thresholdMatching finds a maximum bipartite matching on the augmented
// graph restricted to edges with cost ≤ limit, using Hopcroft–Karp
// (BFS level graph + DFS augmentation, the same level/augment structure as
// a blocking-flow step). It reports whether the matching is perfect and
// returns rowMatch (row → column, unmatched = -1).
//
// Adjacency is read straight off the cost matrix instead of materializing
// edge lists: one candidate threshold never survives more than O(√s)
// phases, and each phase scans the matrix once.
//
// Complexity:
//
//	Time:   O(s² · √s)
//	Memory: O(s)
func thresholdMatching(cost *mat.Dense, limit float64) ([]int, bool) {
	s, _ := cost.Dims()
	rowMatch := make([]int, s) // row → column
	colMatch := make([]int, s) // column → row
	for i := 0; i < s; i++ {
		rowMatch[i] = unmatched
		colMatch[i] = unmatched
	}
	level := make([]int, s)
	queue := make([]int, 0, s)
	matched := 0

	for {
		// BFS phase: layer free rows, then alternate unmatched/matched
		// edges; freeColDist is the depth of the nearest free column.
		queue = queue[:0]
		for i := 0; i < s; i++ {
			if rowMatch[i] == unmatched {
				level[i] = 0
				queue = append(queue, i)
			} else {
				level[i] = unmatched
			}
		}
		freeColDist := unmatched
		for head := 0; head < len(queue); head++ {
			i := queue[head]
			if freeColDist != unmatched && level[i] >= freeColDist {
				continue
			}
			for j := 0; j < s; j++ {
				if cost.At(i, j) > limit {
					continue
				}
				next := colMatch[j]
				if next == unmatched {
					if freeColDist == unmatched {
						freeColDist = level[i] + 1
					}
				} else if level[next] == unmatched {
					level[next] = level[i] + 1
					queue = append(queue, next)
				}
			}
		}
		// No augmenting path exists under this limit.
		if freeColDist == unmatched {
			break
		}

		// DFS phase: extract a maximal set of vertex-disjoint shortest
		// augmenting paths along the level graph.
		for i := 0; i < s; i++ {
			if rowMatch[i] == unmatched && augment(cost, limit, i, level, rowMatch, colMatch) {
				matched++
			}
		}
	}

	return rowMatch, matched == s
}

// augment walks the level graph from row i looking for a free column,
// flipping matched edges on success. Visited rows are closed by resetting
// their level so sibling searches skip them.
func augment(cost *mat.Dense, limit float64, i int, level, rowMatch, colMatch []int) bool {
	for j := 0; j < len(level); j++ {
		if cost.At(i, j) > limit {
			continue
		}
		next := colMatch[j]
		if next == unmatched || (level[next] == level[i]+1 && augment(cost, limit, next, level, rowMatch, colMatch)) {
			rowMatch[i] = j
			colMatch[j] = i

			return true
		}
	}
	level[i] = unmatched

	return false
}
