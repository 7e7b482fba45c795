// Package frontal holds the dense, per-supercolumn data structures the
// numeric driver assembles and consumes (spec §3): contribution blocks
// (the transient "update matrices" passed from a child front to its
// parent), factor blocks (the persistent LU1/L2/Ut2 panels that make up
// the result), and BlockedFactor, the postorder sequence of factor blocks
// returned by numeric factorization.
//
// Grounded on matrix/dense.go's flat-slice-plus-bounds-check discipline,
// generalized here to the shrinking logical row/column lists a
// contribution block needs as ancestors consume it piecemeal.
package frontal
