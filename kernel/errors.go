package kernel

import "errors"

// Sentinel errors for package kernel, prefixed "kernel: " for consistent
// grepping; tests assert with errors.Is.
var (
	// ErrBadShape is returned when a requested block has a non-positive
	// dimension.
	ErrBadShape = errors.New("kernel: invalid block shape")

	// ErrDimensionMismatch is returned when two blocks passed to a rank-k
	// update or triangular solve disagree on a shared dimension.
	ErrDimensionMismatch = errors.New("kernel: dimension mismatch")

	// ErrSingular names the case where every candidate pivot in a column
	// is exactly zero. LU does not return it: LU stops at such a column
	// with a nil error and reports it through rowPivots < min(rows, cols).
	ErrSingular = errors.New("kernel: zero pivot column, matrix is singular")

	// ErrOutOfRange is returned by At/Set for an out-of-bounds index.
	ErrOutOfRange = errors.New("kernel: index out of range")
)
