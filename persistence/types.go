package persistence

import (
	"errors"
	"math"
)

var (
	// ErrNaNValue indicates a diagram point with a NaN coordinate.
	ErrNaNValue = errors.New("persistence: diagram point has NaN coordinate")
	// ErrNegativeInterval indicates a point that dies before it is born.
	ErrNegativeInterval = errors.New("persistence: diagram point dies before it is born")
	// ErrInfiniteBirth indicates a point born at ±Inf, which no filtration
	// can produce.
	ErrInfiniteBirth = errors.New("persistence: diagram point has infinite birth")
)

// Point is one topological feature: born when the sublevel threshold
// reaches Birth, destroyed when it reaches Death. Death == +Inf marks an
// essential class.
type Point struct {
	Birth, Death float64
}

// Persistence returns the lifespan Death − Birth (+Inf for essential classes).
func (p Point) Persistence() float64 { return p.Death - p.Birth }

// IsInfinite reports whether the point is an essential class (Death == +Inf).
func (p Point) IsInfinite() bool { return math.IsInf(p.Death, 1) }

// Diagram is a finite multiset of persistence points.
type Diagram []Point

// Validate checks every point for NaN coordinates, infinite births, and
// negative-length intervals. Essential classes (Death == +Inf) are valid.
//
// Errors: ErrNaNValue, ErrInfiniteBirth, ErrNegativeInterval.
// Complexity: O(len(d)).
func (d Diagram) Validate() error {
	for _, p := range d {
		if math.IsNaN(p.Birth) || math.IsNaN(p.Death) {
			return ErrNaNValue
		}
		if math.IsInf(p.Birth, 0) {
			return ErrInfiniteBirth
		}
		if p.Death < p.Birth {
			return ErrNegativeInterval
		}
	}

	return nil
}

// Finite returns a new Diagram with every essential (infinite-death) class
// removed — the usual pre-filtering step before matching-distance
// computation. The receiver is not modified.
//
// Complexity: O(len(d)).
func (d Diagram) Finite() Diagram {
	out := make(Diagram, 0, len(d))
	for _, p := range d {
		if p.IsInfinite() {
			continue
		}
		out = append(out, p)
	}

	return out
}
