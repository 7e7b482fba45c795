package symbolic

import "errors"

// ErrNotSquare is returned when Analyze is given a non-square matrix.
var ErrNotSquare = errors.New("symbolic: matrix must be square")

// ErrBadColumnOrder is returned when the supplied column order is not a
// permutation of 0..n-1.
var ErrBadColumnOrder = errors.New("symbolic: column order is not a permutation")

// ErrBadConfig is returned when a Config field is out of its valid range.
var ErrBadConfig = errors.New("symbolic: invalid config")
