// Package rowarena provides packed storage for the per-row/per-column
// "superrow" index lists built during symbolic elimination analysis (spec
// §4.2): the union of column indices touched by every row merged into a
// given live set, kept back-to-back in one big int slice and compacted by
// a garbage collector when the tail runs out of room.
//
// This generalizes matrix.Dense's flat-slice-plus-bounds-check discipline
// from a fixed 2-D dense buffer to a 1-D arena of variable-length,
// independently freed segments.
package rowarena

import "errors"

// ErrOutOfRange is returned when an operation references a slot id outside
// [0, n).
var ErrOutOfRange = errors.New("rowarena: slot id out of range")

// ErrNotLive is returned when Rows is called on a slot that was never
// stored or was already freed. Free on such a slot is a no-op and returns
// nil.
var ErrNotLive = errors.New("rowarena: slot is not live")

// ErrTooLarge is returned when a pattern cannot fit even after a full
// compaction; this indicates the caller underestimated the arena capacity.
var ErrTooLarge = errors.New("rowarena: pattern exceeds arena capacity")
