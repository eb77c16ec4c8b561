package match

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tda/persistence"
)

// ground returns the distance between two diagram points under metric m.
func ground(m Metric, p, q persistence.Point) float64 {
	db := math.Abs(p.Birth - q.Birth)
	dd := math.Abs(p.Death - q.Death)
	if m == Euclidean {
		return math.Hypot(db, dd)
	}

	return math.Max(db, dd)
}

// diagonalCost returns the distance from p to its orthogonal projection
// ((b+d)/2, (b+d)/2) onto the diagonal: persistence/2 under Chebyshev,
// persistence/√2 under Euclidean.
func diagonalCost(m Metric, p persistence.Point) float64 {
	half := (p.Death - p.Birth) / 2
	if m == Euclidean {
		return half * math.Sqrt2
	}

	return half
}

// costMatrix builds the (nA+nB)×(nA+nB) augmented assignment matrix shared
// by both objectives.
//
// Layout (rows = A points then diagonal slots for B; columns = B points
// then diagonal slots for A):
//
//	┌                     ┬                     ┐
//	│  ground(aᵢ, bⱼ)     │  diagonalCost(aᵢ)   │   rows 0..nA-1
//	├                     ┼                     ┤
//	│  diagonalCost(bⱼ)   │         0           │   rows nA..s-1
//	└                     ┴                     ┘
//
// A point matched into the right (resp. lower) block pays exactly its own
// destruction cost regardless of which padding slot it lands in, so the
// per-row/per-column constant blocks are equivalent to dedicated diagonal
// copies while keeping every entry finite. The zero lower-right block lets
// any surplus padding slots absorb each other for free.
//
// Every entry is raised to the given power (1 for Bottleneck, p for
// Wasserstein) before being stored.
//
// Complexity: O(s²) time and memory, s = nA+nB.
func costMatrix(a, b persistence.Diagram, m Metric, power float64) *mat.Dense {
	nA, nB := len(a), len(b)
	s := nA + nB
	c := mat.NewDense(s, s, nil)

	for i, pa := range a {
		for j, pb := range b {
			c.Set(i, j, raise(ground(m, pa, pb), power))
		}
		dc := raise(diagonalCost(m, pa), power)
		for j := nB; j < s; j++ {
			c.Set(i, j, dc)
		}
	}
	for j, pb := range b {
		dc := raise(diagonalCost(m, pb), power)
		for i := nA; i < s; i++ {
			c.Set(i, j, dc)
		}
	}
	// Lower-right block stays zero: padding-to-padding is free.

	return c
}

// raise computes v^power, skipping the Pow call for the common power=1 case
// to keep Bottleneck costs bit-identical to the ground distances.
func raise(v, power float64) float64 {
	if power == 1 {
		return v
	}

	return math.Pow(v, power)
}

// toMatching converts a row→column assignment on the augmented matrix into
// the public Matching form. Rows below nA are A points, the rest are
// padding for B; columns below nB are B points, the rest are padding for
// A. Padding-to-padding assignments carry no information and are dropped.
//
// The result lists A's points in index order, then B's destroyed points in
// index order — deterministic for a deterministic assignment.
func toMatching(rowMatch []int, nA, nB int) Matching {
	out := make(Matching, 0, nA+nB)
	for i := 0; i < nA; i++ {
		j := rowMatch[i]
		if j < nB {
			out = append(out, Pair{A: i, B: j})
		} else {
			out = append(out, Pair{A: i, B: Diagonal})
		}
	}
	for i := nA; i < len(rowMatch); i++ {
		if j := rowMatch[i]; j < nB {
			out = append(out, Pair{A: Diagonal, B: j})
		}
	}

	return out
}

// validateInput rejects malformed or non-finite diagrams and unknown
// metrics before any matrix is built.
func validateInput(a, b persistence.Diagram, m Metric) error {
	if m != Chebyshev && m != Euclidean {
		return ErrBadMetric
	}
	for _, d := range []persistence.Diagram{a, b} {
		if err := d.Validate(); err != nil {
			return err
		}
		for _, p := range d {
			if p.IsInfinite() {
				return ErrInfiniteDeath
			}
		}
	}

	return nil
}
