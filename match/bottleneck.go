package match

import (
	"sort"

	"github.com/katalvlaran/tda/persistence"
)

// Bottleneck computes the exact Bottleneck distance between two finite
// persistence diagrams together with a witnessing optimal matching.
//
// Description:
//
//	The Bottleneck distance is the smallest threshold t such that every
//	point of A can be matched — to a point of B or to its own diagonal
//	projection — using only correspondences of cost ≤ t, and vice versa.
//	It is the minimax objective on the shared augmented cost matrix.
//
// Steps:
//  1. Validate both diagrams (finite, well-formed) and the metric.
//  2. Build the augmented cost matrix (power 1).
//  3. Collect the sorted distinct cost values as candidate thresholds.
//  4. Binary-search the smallest candidate admitting a perfect matching,
//     testing feasibility with Hopcroft–Karp.
//
// Every matched cost is itself a candidate value, so the minimal feasible
// candidate equals the maximum edge cost of its witness exactly — no
// tolerance is involved and the result is bit-reproducible.
//
// Inputs:
//   - a, b: finite diagrams (drop essential classes with Diagram.Finite).
//   - opts: ground-metric options; nil means DefaultOptions.
//
// Returns:
//   - distance: the minimal feasible threshold.
//   - matching: the perfect matching achieving it (diagonal-padding pairs
//     omitted).
//
// Errors:
//   - persistence.ErrNaNValue / ErrInfiniteBirth / ErrNegativeInterval —
//     malformed input diagram.
//   - ErrInfiniteDeath — an essential class was not filtered out.
//   - ErrBadMetric — unknown ground metric.
//   - ErrNoPerfectMatching — internal invariant violation (the padded
//     graph is always feasible at the largest candidate).
//
// Complexity:
//
//	Time:   O(s²·√s · log s), s = len(a)+len(b)
//	Memory: O(s²)
func Bottleneck(a, b persistence.Diagram, opts *Options) (float64, Matching, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateInput(a, b, o.Metric); err != nil {
		return 0, nil, err
	}

	nA, nB := len(a), len(b)
	s := nA + nB
	if s == 0 {
		return 0, Matching{}, nil
	}

	cost := costMatrix(a, b, o.Metric, 1)

	// Candidate thresholds: the sorted distinct matrix entries. The
	// optimum is the largest cost used by some perfect matching, so it is
	// always one of these.
	seen := make(map[float64]struct{}, s*s)
	candidates := make([]float64, 0, s*s)
	for i := 0; i < s; i++ {
		for j := 0; j < s; j++ {
			v := cost.At(i, j)
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			candidates = append(candidates, v)
		}
	}
	sort.Float64s(candidates)

	// Binary search: feasibility is monotone in the threshold.
	lo, hi := 0, len(candidates)-1
	if _, ok := thresholdMatching(cost, candidates[hi]); !ok {
		return 0, nil, ErrNoPerfectMatching
	}
	for lo < hi {
		mid := (lo + hi) / 2
		if _, ok := thresholdMatching(cost, candidates[mid]); ok {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	rowMatch, ok := thresholdMatching(cost, candidates[lo])
	if !ok {
		return 0, nil, ErrNoPerfectMatching
	}

	return candidates[lo], toMatching(rowMatch, nA, nB), nil
}
