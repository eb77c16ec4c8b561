package persistence

import "github.com/katalvlaran/tda/filtration"

// Oracle is the external persistent-homology engine consuming the sparse
// weighted graphs built by the filtration package.
//
// The input graph is always supplied in the explicit pairwise-weights
// convention (diagonal = vertex appearance times, off-diagonal = simplex
// appearance times), never as raw point coordinates — implementations must
// set whatever "distance matrix" flag their backend requires. Absent
// entries mean "no simplex", not weight zero.
//
// Persistence returns one Diagram per homological dimension, index 0 up to
// maxDim inclusive. Dimension-0 diagrams may contain one infinite-death
// point per connected component (the class that never merges away).
//
// Implementations must be deterministic for identical inputs; they are the
// only stateful collaborator this module tolerates, so any caching or
// resource handling lives entirely behind this boundary.
type Oracle interface {
	Persistence(g *filtration.Graph, maxDim int) ([]Diagram, error)
}
