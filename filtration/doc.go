// Package filtration builds the sparse weighted graph of a sublevelset
// (lower-star) filtration from a scalar field sampled on a 1-D sequence or
// a triangle mesh.
//
// 🚀 What is a lower-star filtration?
//
//	Given one real value per vertex, simplices enter the filtration in
//	order of the scalar function: a vertex appears at its own value, an
//	edge appears once both endpoints have appeared — i.e. at the maximum
//	of its endpoint values.  Sweeping the threshold upward and tracking
//	connected components yields 0-dimensional persistent homology.
//
// ✨ Key features:
//   - Build: field + edges → sparse weighted graph (diagonal = vertex
//     births, off-diagonal = max-of-endpoints edge weights)
//   - PathEdges: the N−1 consecutive pairs of a time series
//   - TriangleEdges: unique unordered edges of a triangle mesh
//   - strict numeric policy: NaN/±Inf rejected unless explicitly allowed
//   - deterministic output: stable edge order regardless of input order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tda/filtration"
//
//	field := []float64{0, 1, 0, 1, 0}
//	g, err := filtration.Build(field, filtration.PathEdges(len(field)))
//	// g.Birth(i) = field[i]; g.Weight(i,j) = max(field[i], field[j])
//
// The resulting Graph is consumed by a persistence engine through
// persistence.Oracle; only entries explicitly present carry meaning —
// absent entries are absent, not zero.
//
// Performance:
//
//   - Time:   O(N + E·log E) (deduplication + deterministic ordering)
//   - Memory: O(N + E)
package filtration
