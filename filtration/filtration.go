package filtration

import (
	"math"
	"sort"
)

// Build constructs the sparse weighted graph of the lower-star filtration
// induced by a scalar field on a 1-complex.
//
// Description:
//
//	Each vertex i receives diagonal weight field[i] — the threshold at
//	which it enters the filtration. Each edge (i,j) receives weight
//	max(field[i], field[j]) — the lower-star rule: an edge exists only
//	once both endpoints exist.
//
// Steps:
//  1. Resolve options and validate the field (O(N)).
//  2. Validate each edge (range, no self-loops), normalize to U ≤ V,
//     deduplicate (O(E)).
//  3. Sort edges for deterministic enumeration (O(E·log E)).
//
// Inputs:
//   - field: one real value per vertex, len ≥ 1.
//   - edges: unordered vertex pairs; duplicates are collapsed (the weight
//     is identical either way), orientation is ignored.
//   - opts: numeric-policy options (see options.go).
//
// Returns:
//   - *Graph with exactly N diagonal entries and one entry per unique edge.
//
// Errors:
//   - ErrEmptyField   — len(field) == 0.
//   - ErrNonFinite    — NaN/±Inf field value under the active policy.
//   - ErrVertexRange  — edge endpoint outside [0, N).
//   - ErrSelfLoop     — edge with U == V.
//
// Determinism:
//   - Output is identical for any permutation of the edge slice.
//
// Complexity:
//
//	Time:   O(N + E·log E)
//	Memory: O(N + E)
func Build(field []float64, edges []Edge, opts ...Option) (*Graph, error) {
	o := gatherOptions(opts...)

	// 1) Validate the scalar field.
	n := len(field)
	if n == 0 {
		return nil, ErrEmptyField
	}
	if o.validate {
		for _, v := range field {
			if math.IsNaN(v) || math.IsInf(v, -1) {
				return nil, ErrNonFinite
			}
			if math.IsInf(v, 1) && !o.allowInf {
				return nil, ErrNonFinite
			}
		}
	}

	// 2) Validate, normalize and deduplicate edges.
	wts := make(map[Edge]float64, len(edges))
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, ErrVertexRange
		}
		if e.U == e.V {
			return nil, ErrSelfLoop
		}
		c := e.canonical()
		if _, seen := wts[c]; seen {
			continue
		}
		wts[c] = math.Max(field[c.U], field[c.V])
	}

	// 3) Deterministic edge order: U asc, then V asc.
	list := make([]Edge, 0, len(wts))
	for e := range wts {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].U != list[j].U {
			return list[i].U < list[j].U
		}

		return list[i].V < list[j].V
	})

	return &Graph{
		n:     n,
		diag:  append([]float64(nil), field...),
		edges: list,
		wts:   wts,
	}, nil
}

// PathEdges returns the N−1 consecutive-index edges of a 1-D sequence of
// length n — the path graph underlying a time series. Returns nil for n < 2.
//
// Complexity: O(N).
func PathEdges(n int) []Edge {
	if n < 2 {
		return nil
	}
	out := make([]Edge, n-1)
	for i := range out {
		out[i] = Edge{U: i, V: i + 1}
	}

	return out
}

// TriangleEdges extracts every unique unordered edge from a triangle mesh:
// each face (a,b,c) contributes edges {a,b}, {b,c}, {a,c}, deduplicated
// across faces.
//
// Endpoints are not range-checked here; Build validates them against the
// scalar field.
//
// Complexity: O(F) expected, F = number of faces.
func TriangleEdges(tris [][3]int) []Edge {
	seen := make(map[Edge]struct{}, 3*len(tris))
	out := make([]Edge, 0, 3*len(tris))
	for _, t := range tris {
		for _, e := range [3]Edge{
			{U: t[0], V: t[1]},
			{U: t[1], V: t[2]},
			{U: t[0], V: t[2]},
		} {
			c := e.canonical()
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}
