package match

import "errors"

var (
	// ErrInfiniteDeath indicates a diagram still carries an essential
	// (infinite-death) class; filter with persistence.Diagram.Finite first.
	ErrInfiniteDeath = errors.New("match: diagram contains an infinite-death point")
	// ErrBadOrder indicates a Wasserstein order p < 1 or NaN.
	ErrBadOrder = errors.New("match: Wasserstein order must be ≥ 1")
	// ErrBadMetric indicates an unknown ground-metric tag.
	ErrBadMetric = errors.New("match: unknown ground metric")
	// ErrNoPerfectMatching signals an internal invariant violation: the
	// diagonal-padded bipartite graph always admits a perfect matching, so
	// this is a construction bug, never a legitimate input condition.
	ErrNoPerfectMatching = errors.New("match: internal: no perfect matching on augmented diagrams")
)

// Metric selects the ground distance between diagram points.
//
//   - Chebyshev — L∞: max(|Δbirth|, |Δdeath|). The classical diagram
//     metric; diagonal-projection cost is persistence/2.
//   - Euclidean — L2: hypot(Δbirth, Δdeath); diagonal-projection cost is
//     persistence/√2.
type Metric int

const (
	// Chebyshev is the L∞ ground metric (default).
	Chebyshev Metric = iota
	// Euclidean is the L2 ground metric.
	Euclidean
)

// Diagonal marks a matching side that pairs a point with its own
// orthogonal projection onto the diagonal birth=death.
const Diagonal = -1

// Pair is one element of a Matching: indices into the two diagrams, either
// of which may be Diagonal (a destroyed point).
type Pair struct {
	A, B int
}

// Matching is the full optimal correspondence: every point of both
// diagrams appears in exactly one Pair, matched either to a real point of
// the other diagram or to Diagonal. Zero-cost diagonal-to-diagonal padding
// pairs are omitted.
type Matching []Pair

// Options configures the matching engines.
//   - Metric: ground distance between points (default Chebyshev).
type Options struct {
	Metric Metric
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Metric: Chebyshev}
}
