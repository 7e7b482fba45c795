package solve

import "errors"

// ErrDimensionMismatch is returned when the right-hand side matrix's row
// count disagrees with the blocked factor's size.
var ErrDimensionMismatch = errors.New("solve: right-hand side dimension mismatch")
