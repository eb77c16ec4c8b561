package pairwise

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tda/match"
	"github.com/katalvlaran/tda/persistence"
)

// Matrix computes the symmetric all-pairs distance matrix of a diagram
// collection.
//
// Steps:
//  1. Normalize options (workers, context) and validate the kind.
//  2. Feed the strict upper triangle (i < j) to a worker pool; each worker
//     runs one independent pairwise match and writes its disjoint cell.
//  3. Join, then report: nil error on full success, the first PairError
//     under FailFast, a BatchError listing every failed pair otherwise.
//
// The diagonal is zero by construction (distance(D,D) = 0) and is never
// dispatched. Cancellation of opts.Ctx aborts outstanding pairs and
// returns the context error.
//
// Returns:
//   - *mat.SymDense of size n×n on success; nil whenever err != nil.
//
// Errors:
//   - ErrNoDiagrams — empty collection.
//   - ErrBadKind — unknown Kind tag.
//   - PairError / *BatchError — per-pair failures (see §Options.FailFast).
//   - the Ctx error when the caller cancels the batch.
//
// Complexity:
//
//	Time:   n(n−1)/2 pairwise matches, divided across Workers.
//	Memory: O(n²) output + one cost matrix per in-flight pair.
func Matrix(diagrams []persistence.Diagram, opts *Options) (*mat.SymDense, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Kind != Bottleneck && o.Kind != Wasserstein {
		return nil, ErrBadKind
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	n := len(diagrams)
	if n == 0 {
		return nil, ErrNoDiagrams
	}

	out := mat.NewSymDense(n, nil)
	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	type job struct{ i, j int }
	jobs := make(chan job)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []PairError
	)
	for w := 0; w < o.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jb := range jobs {
				if ctx.Err() != nil {
					continue // drain remaining jobs after cancellation
				}
				d, err := distance(diagrams[jb.i], diagrams[jb.j], &o)
				if err != nil {
					mu.Lock()
					failures = append(failures, PairError{I: jb.i, J: jb.j, Err: err})
					mu.Unlock()
					if o.FailFast {
						cancel()
					}
					continue
				}
				// Disjoint cell per pair: no further synchronization needed.
				out.SetSym(jb.i, jb.j, d)
			}
		}()
	}

	// Dispatch the strict upper triangle.
feed:
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			select {
			case jobs <- job{i: i, j: j}:
			case <-ctx.Done():
				break feed
			}
		}
	}
	close(jobs)
	wg.Wait()

	// External cancellation wins over any pair failures it caused.
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}
	if len(failures) > 0 {
		sort.Slice(failures, func(a, b int) bool {
			if failures[a].I != failures[b].I {
				return failures[a].I < failures[b].I
			}

			return failures[a].J < failures[b].J
		})
		if o.FailFast {
			return nil, failures[0]
		}

		return nil, &BatchError{Pairs: failures}
	}

	return out, nil
}

// distance runs one pairwise comparison under the batch configuration.
func distance(a, b persistence.Diagram, o *Options) (float64, error) {
	mo := match.Options{Metric: o.Metric}
	if o.Kind == Bottleneck {
		d, _, err := match.Bottleneck(a, b, &mo)

		return d, err
	}
	d, _, err := match.Wasserstein(a, b, o.Order, &mo)

	return d, err
}
