package frontal

import "github.com/arai3racoon/taucs/ccs"

// BlockedFactor is the result of numeric factorization: the sequence of
// per-supercolumn FactorBlocks in postorder, plus the overall shape and
// numeric kind of the matrix they factor (spec §3: "m, n, type, num_blocks,
// and the vector of factor blocks in postorder").
type BlockedFactor[T ccs.Number] struct {
	M, N   int
	Kind   ccs.Type
	Blocks []*FactorBlock[T]
}

// NewBlockedFactor wraps blocks, which callers must already have in
// postorder (the order symbolic.Symbolic.Columns/numeric traversal
// produces them in).
func NewBlockedFactor[T ccs.Number](m, n int, kind ccs.Type, blocks []*FactorBlock[T]) *BlockedFactor[T] {
	return &BlockedFactor[T]{M: m, N: n, Kind: kind, Blocks: blocks}
}

// NumBlocks returns the number of factor blocks (supercolumns).
func (bf *BlockedFactor[T]) NumBlocks() int { return len(bf.Blocks) }

// Valid reports whether every block factored successfully.
func (bf *BlockedFactor[T]) Valid() bool {
	for _, b := range bf.Blocks {
		if !b.Valid {
			return false
		}
	}

	return true
}

// Validate is the "final validity sweep" spec §7 describes: a single
// invalid factor block poisons the whole factor, discovered here rather
// than by letting a later solve silently read a half-built block.
func (bf *BlockedFactor[T]) Validate() error {
	for _, b := range bf.Blocks {
		if !b.Valid {
			return ErrNumericFailure
		}
	}

	return nil
}
