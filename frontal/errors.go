package frontal

import "errors"

// ErrNotMember is returned when a compaction is asked to remove a
// row/column index a contribution block does not currently hold.
var ErrNotMember = errors.New("frontal: index is not a live member of this block")

// ErrBadShape is returned when a contribution block is constructed with an
// empty row or column list, or a factor block with an empty pivot list.
var ErrBadShape = errors.New("frontal: mismatched shape")

// ErrNumericFailure is returned by BlockedFactor.Validate when any factor
// block failed to factor (spec §7: a single invalid block poisons the
// whole factor).
var ErrNumericFailure = errors.New("frontal: numeric factorization failed")
