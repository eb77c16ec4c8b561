// Package pairwise computes all-pairs distance matrices over collections
// of persistence diagrams, fanning the independent pairwise comparisons
// out across a worker pool.
//
// Every pair is an isolated pure computation: workers write to disjoint
// cells of the shared symmetric output and need no synchronization beyond
// the final join. Failures stay local to their pair — by default the whole
// triangle is attempted and every failing pair is reported in a
// BatchError; with FailFast the first failure cancels the remaining work.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tda/pairwise"
//
//	opts := pairwise.DefaultOptions()
//	opts.Kind = pairwise.Wasserstein
//	opts.Order = 2
//	dm, err := pairwise.Matrix(diagrams, &opts)
//	// dm.At(i, j) = Wasserstein₂(diagrams[i], diagrams[j])
//
// The resulting *mat.SymDense feeds directly into downstream embedding
// (MDS and friends), which stays outside this module.
//
// Performance: O(n²/2) pairwise calls, each O(s³) in the summed diagram
// sizes; wall time divides by Workers.
package pairwise
