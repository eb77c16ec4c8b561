package match

import (
	"math"

	"github.com/katalvlaran/tda/persistence"
)

// Wasserstein computes the exact order-p Wasserstein distance between two
// finite persistence diagrams together with the optimal matching.
//
// Description:
//
//	The order-p Wasserstein distance is the minimum over perfect matchings
//	on the augmented diagrams of (Σ cost^p)^(1/p), where each point either
//	matches a point of the other diagram at its ground distance or is
//	destroyed against the diagonal at half its persistence (under
//	Chebyshev; persistence/√2 under Euclidean).
//
// Steps:
//  1. Validate the order (finite p ≥ 1; p = +Inf delegates to Bottleneck),
//     the metric, and both diagrams.
//  2. Build the augmented cost matrix with entries raised to p.
//  3. Solve the linear assignment problem exactly with Jonker–Volgenant
//     shortest augmenting paths.
//  4. Return the p-th root of the optimal total and the matching.
//
// Inputs:
//   - a, b: finite diagrams (drop essential classes with Diagram.Finite).
//   - p: aggregation order, p ≥ 1. +Inf yields the Bottleneck distance.
//   - opts: ground-metric options; nil means DefaultOptions.
//
// Returns:
//   - distance: (Σ matched cost^p)^(1/p); 0 when both diagrams are empty.
//   - matching: the optimal assignment (diagonal-padding pairs omitted).
//
// Errors:
//   - ErrBadOrder — p < 1 or NaN.
//   - persistence.ErrNaNValue / ErrInfiniteBirth / ErrNegativeInterval —
//     malformed input diagram.
//   - ErrInfiniteDeath — an essential class was not filtered out.
//   - ErrBadMetric — unknown ground metric.
//
// Determinism:
//   - The distance is bit-reproducible; the matching is *a* valid optimum
//     with deterministic tie-breaking (lowest column index).
//
// Complexity:
//
//	Time:   O(s³), s = len(a)+len(b)
//	Memory: O(s²)
func Wasserstein(a, b persistence.Diagram, p float64, opts *Options) (float64, Matching, error) {
	if math.IsNaN(p) || p < 1 {
		return 0, nil, ErrBadOrder
	}
	if math.IsInf(p, 1) {
		return Bottleneck(a, b, opts)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateInput(a, b, o.Metric); err != nil {
		return 0, nil, err
	}

	nA, nB := len(a), len(b)
	if nA+nB == 0 {
		return 0, Matching{}, nil
	}

	cost := costMatrix(a, b, o.Metric, p)
	rowMatch, total := solveAssignment(cost)

	dist := total
	if p != 1 {
		dist = math.Pow(total, 1/p)
	}

	return dist, toMatching(rowMatch, nA, nB), nil
}

// Distance is the tagged-order entry point matching the classical diagram
// distance contract: order = +Inf selects Bottleneck, any finite order
// p ≥ 1 selects order-p Wasserstein.
func Distance(a, b persistence.Diagram, order float64, opts *Options) (float64, Matching, error) {
	if math.IsInf(order, 1) {
		return Bottleneck(a, b, opts)
	}

	return Wasserstein(a, b, order, opts)
}
