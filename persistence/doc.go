// Package persistence defines the diagram model shared by the whole module
// and the narrow boundary to an external persistent-homology engine.
//
// A Diagram is a finite multiset of (birth, death) points with
// birth ≤ death; Death == +Inf marks an essential class that never dies
// within the filtration (at most one per connected component in dimension
// zero). Validation is strict: NaN coordinates and negative-length
// intervals are rejected, never clamped — clamping would silently corrupt
// every downstream distance.
//
// The Oracle interface is the only contact point with the persistence
// computation itself. This package deliberately ships no implementation:
// boundary-matrix reduction is an external primitive, and any engine that
// honors the contract (sparse pairwise weights in, diagrams per dimension
// out) slots in unchanged.
package persistence
