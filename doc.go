// Package tda is your in-memory toolkit for topological signatures of
// shapes and time series — from lower-star filtrations to optimal-transport
// distances between persistence diagrams.
//
// 🚀 What is tda?
//
//	A focused, deterministic library that brings together:
//		• Filtration building: sublevelset (lower-star) weighted graphs
//		  from scalar fields on sequences and triangle meshes
//		• Diagram primitives: persistence points, validation, essential-class
//		  filtering, and the narrow oracle boundary to any persistence engine
//		• Matching distances: exact Bottleneck (minimax) and Wasserstein
//		  (min-sum, L-p) distances with full optimal-matching recovery
//		• Batch comparison: parallel all-pairs distance matrices over
//		  diagram collections
//
// ✨ Why choose tda?
//
//   - Exact by contract – no silent approximations, bit-reproducible distances
//   - Pure functions – no shared state, no side effects, safe to parallelize
//   - Clear boundaries – persistence computation, I/O and plotting stay
//     behind narrow interfaces, never inside the core
//
// Everything is organized under four subpackages:
//
//	filtration/  — lower-star filtration graph builder (paths & meshes)
//	persistence/ — diagram types, validation, and the Oracle boundary
//	match/       — Bottleneck & Wasserstein distances + optimal matchings
//	pairwise/    — parallel all-pairs distance matrices
//
// Quick ASCII example:
//
//	field  0───1───0───1───0     (a path with two valleys)
//	            ↓ lower-star
//	diagram {(0,1)} + one essential class
//
// Dive into each package's doc.go for algorithms, complexity and examples.
//
//	go get github.com/katalvlaran/tda
package tda
