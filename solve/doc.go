// Package solve implements the forward/back substitution driver of spec
// §4.5: given a BlockedFactor and a dense right-hand side, produce X such
// that A X = B, without ever materializing A, L or U as a single dense or
// sparse matrix.
//
// The driver walks the factor's blocks in forward (factorization) order
// for the L-solve and in reverse for the U-solve, exactly mirroring
// numeric.Factor's postorder traversal: a block's pivot rows are only
// meaningful once every descendant block has contributed its update, and
// a block's pivot columns only resolve to a final value once every
// ancestor's U-portion has been applied.
package solve
