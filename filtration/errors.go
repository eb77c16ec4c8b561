package filtration

import "errors"

var (
	// ErrEmptyField indicates the scalar field has no samples.
	ErrEmptyField = errors.New("filtration: scalar field must contain at least one value")
	// ErrVertexRange indicates an edge references a vertex index outside the field.
	ErrVertexRange = errors.New("filtration: edge endpoint outside scalar field range")
	// ErrSelfLoop indicates an edge joins a vertex to itself; vertex weights
	// live on the diagonal and are never supplied as edges.
	ErrSelfLoop = errors.New("filtration: self-loop edges are not allowed")
	// ErrNonFinite indicates a NaN or infinite scalar value under the
	// default numeric policy.
	ErrNonFinite = errors.New("filtration: scalar field values must be finite")
)
