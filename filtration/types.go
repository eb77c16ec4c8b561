// Package filtration: domain types for the lower-star graph builder.
// Errors live in errors.go and functional options in options.go per the
// global conventions.
package filtration

// Edge is an unordered pair of vertex indices. Build normalizes every edge
// into U ≤ V form, so Edge{2, 5} and Edge{5, 2} denote the same edge.
type Edge struct {
	U, V int
}

// canonical returns the edge normalized into U ≤ V form.
func (e Edge) canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Triplet is one explicit entry of the sparse weighted graph, in the
// (row, column, weight) convention persistence engines ingest.
type Triplet struct {
	Row, Col int
	Weight   float64
}

// Graph is the sparse weighted output of Build.
//
// Entry (i,i) holds the birth time of vertex i (its scalar value); entry
// (i,j) for each input edge holds max(field[i], field[j]). Only entries
// explicitly present exist — absent entries mean "no simplex", never zero.
//
// Graph is immutable after Build and safe for concurrent reads.
type Graph struct {
	n     int              // number of vertices
	diag  []float64        // diag[i] = birth time of vertex i
	edges []Edge           // canonical edges, sorted (U asc, then V asc)
	wts   map[Edge]float64 // canonical edge → weight
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return g.n }

// EdgeCount returns the number of unique undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Birth returns the diagonal weight (appearance time) of vertex i.
// It panics if i is out of range, matching slice-index semantics.
func (g *Graph) Birth(i int) float64 { return g.diag[i] }

// Births returns a copy of the full diagonal.
func (g *Graph) Births() []float64 {
	return append([]float64(nil), g.diag...)
}

// Weight reports the weight of edge (i,j) and whether that edge is present.
// Lookup is symmetric: Weight(i,j) == Weight(j,i).
func (g *Graph) Weight(i, j int) (float64, bool) {
	w, ok := g.wts[Edge{U: i, V: j}.canonical()]

	return w, ok
}

// Edges returns the canonical edge list in deterministic (U asc, V asc) order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Triplets enumerates every explicit entry of the sparse structure:
// N diagonal entries first, then the off-diagonal entries in deterministic
// order. When mirrored is true each edge appears twice, as (i,j) and (j,i),
// for engines that require explicit symmetry; otherwise once, as (U,V) with
// U ≤ V.
//
// Complexity: O(N + E).
func (g *Graph) Triplets(mirrored bool) []Triplet {
	size := g.n + len(g.edges)
	if mirrored {
		size += len(g.edges)
	}
	out := make([]Triplet, 0, size)
	for i, w := range g.diag {
		out = append(out, Triplet{Row: i, Col: i, Weight: w})
	}
	for _, e := range g.edges {
		w := g.wts[e]
		out = append(out, Triplet{Row: e.U, Col: e.V, Weight: w})
		if mirrored {
			out = append(out, Triplet{Row: e.V, Col: e.U, Weight: w})
		}
	}

	return out
}
