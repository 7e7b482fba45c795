// Package dsu implements a disjoint-set (union-find) structure over the
// dense integer universe 0..n-1.
//
// It backs the row-merge matrix used by symbolic elimination analysis
// (spec §4.3): columns are grouped into supercolumn-parent chains as rows
// are merged, and Find/Union let that grouping be queried and updated in
// near-constant amortized time.
//
// Complexity:
//
//   - Find: amortized O(α(n)) with path compression.
//   - Union: O(1) plus one Find per side; O(α(n)) amortized with
//     union-by-rank enabled.
package dsu

import "errors"

// ErrOutOfRange is returned when Find or Union is called with an index
// outside [0, n).
var ErrOutOfRange = errors.New("dsu: index out of range")
