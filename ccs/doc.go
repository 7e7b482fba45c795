// Package ccs provides the compressed-column sparse matrix contract the
// factorization engine is built around (spec §3, §6): column pointers,
// row indices, a typed value buffer, and the scalar Type the values are
// drawn from.
//
// Field names follow the indptr/ind/data convention used by compressed
// sparse libraries in the wider Go ecosystem (e.g. james-bowman/sparse),
// adapted to the column-oriented layout this engine requires: Colptr,
// Rowind, Values.
package ccs

import "errors"

// Sentinel errors for package ccs. Every message is prefixed "ccs: " for
// consistent grepping; tests assert with errors.Is.
var (
	// ErrNotSquare is returned when a non-square matrix is handed to an
	// operation that requires m == n (the engine supports only square A).
	ErrNotSquare = errors.New("ccs: matrix must be square")

	// ErrEmptyColumn is returned when a column has zero stored nonzeros;
	// spec §4.3 requires this to surface as an error, never be silently
	// treated as already eliminated.
	ErrEmptyColumn = errors.New("ccs: empty column")

	// ErrBadType is returned when Type holds a value outside the four
	// supported scalar kinds.
	ErrBadType = errors.New("ccs: invalid scalar type")

	// ErrDimensionMismatch is returned when two matrices or a matrix and
	// a permutation disagree on size.
	ErrDimensionMismatch = errors.New("ccs: dimension mismatch")

	// ErrMalformed is returned when colptr/rowind/values are structurally
	// inconsistent (e.g. colptr not monotonic, or len(rowind) != nnz).
	ErrMalformed = errors.New("ccs: malformed compressed-column structure")
)
