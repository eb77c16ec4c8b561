package pairwise

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tda/match"
)

var (
	// ErrNoDiagrams indicates an empty input collection.
	ErrNoDiagrams = errors.New("pairwise: at least one diagram is required")
	// ErrBadKind indicates an unknown distance kind.
	ErrBadKind = errors.New("pairwise: unknown distance kind")
)

// Kind selects which diagram distance fills the matrix.
type Kind int

const (
	// Bottleneck fills the matrix with minimax matching distances.
	Bottleneck Kind = iota
	// Wasserstein fills the matrix with order-p min-sum matching distances.
	Wasserstein
)

// Options configures an all-pairs computation.
//   - Kind:     distance to compute (default Bottleneck).
//   - Order:    Wasserstein aggregation order (default 2; ignored for
//     Bottleneck).
//   - Metric:   ground metric forwarded to the match engines.
//   - Workers:  pool size; values ≤ 0 mean runtime.NumCPU().
//   - FailFast: cancel outstanding pairs on the first failure and return
//     it alone instead of a full BatchError.
//   - Ctx:      overall deadline/cancellation; nil means context.Background().
type Options struct {
	Kind     Kind
	Order    float64
	Metric   match.Metric
	Workers  int
	FailFast bool
	Ctx      context.Context
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Kind:   Bottleneck,
		Order:  2,
		Metric: match.Chebyshev,
	}
}

// PairError reports a failed comparison of diagrams I and J.
type PairError struct {
	I, J int
	Err  error
}

func (e PairError) Error() string {
	return fmt.Sprintf("pairwise: pair (%d,%d): %v", e.I, e.J, e.Err)
}

// Unwrap exposes the underlying match/validation error to errors.Is.
func (e PairError) Unwrap() error { return e.Err }

// BatchError aggregates every failed pair of a non-fail-fast run, sorted by
// (I, J). Successful pairs are unaffected by the failures it reports.
type BatchError struct {
	Pairs []PairError
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("pairwise: %d pair(s) failed, first: %v", len(e.Pairs), e.Pairs[0])
}
