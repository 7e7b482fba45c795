package numeric

import "errors"

// Sentinel errors for package numeric, prefixed "numeric: " for consistent
// grepping; tests assert with errors.Is.
var (
	// ErrDimensionMismatch is returned when the matrix passed to Factor
	// disagrees in size with the Symbolic record built for it.
	ErrDimensionMismatch = errors.New("numeric: matrix and symbolic record disagree on size")

	// ErrBadConfig is returned when Options fail validation.
	ErrBadConfig = errors.New("numeric: invalid options")
)
