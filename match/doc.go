// Package match computes exact optimal-matching distances between
// persistence diagrams: Bottleneck (minimax) and Wasserstein (min-sum,
// L-p aggregated), each with full recovery of the optimal matching.
//
// 🚀 How does diagram matching work?
//
//	Both diagrams are augmented with diagonal projections: every point may
//	either match a real point of the other diagram at its ground distance,
//	or be destroyed against the diagonal birth=death at half its
//	persistence. On the (nA+nB)×(nA+nB) augmented cost matrix,
//	Bottleneck minimizes the largest matched cost and Wasserstein
//	minimizes the L-p sum of matched costs.
//
// ✨ Key features:
//   - shared augmented cost-matrix core, two objectives on top of it
//   - Bottleneck: binary search over candidate thresholds with a
//     Hopcroft–Karp perfect-matching feasibility test — exact minimax
//   - Wasserstein: Jonker–Volgenant shortest augmenting paths — exact
//     minimum-cost assignment, never an approximation
//   - configurable ground metric (Chebyshev default, Euclidean optional)
//     and caller-chosen Wasserstein order p ≥ 1
//   - Matching output with explicit Diagonal markers for destroyed points
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tda/match"
//
//	opts := match.DefaultOptions()
//	dB, mB, err := match.Bottleneck(a, b, &opts)
//	dW, mW, err := match.Wasserstein(a, b, 2, &opts)
//
// Diagrams must be finite: drop essential classes first with
// persistence.Diagram.Finite().
//
// Performance:
//
//   - Bottleneck:  O(s²·√s · log s), s = nA+nB
//   - Wasserstein: O(s³)
//   - Memory:      O(s²) for the augmented cost matrix
package match
