package solve

import (
	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/frontal"
	"github.com/arai3racoon/taucs/kernel"
)

// Solve computes X such that A·X = B given bf (spec §4.5), where B is a
// dense bf.N × nrhs right-hand side. BlockedFactor.Validate is called
// first: a single invalid factor block poisons the whole solve.
//
// B is never mutated; the driver works against a private copy so callers
// can reuse their right-hand side across multiple solves of the same
// factor.
func Solve[T ccs.Number](bf *frontal.BlockedFactor[T], b *kernel.Block[T]) (*kernel.Block[T], error) {
	if err := bf.Validate(); err != nil {
		return nil, err
	}
	if b.Rows != bf.N {
		return nil, ErrDimensionMismatch
	}

	work, err := kernel.NewBlock[T](b.Rows, b.Cols)
	if err != nil {
		return nil, err
	}
	copyRows(work, allRows(b.Rows), b, allRows(b.Rows))

	x, err := kernel.NewBlock[T](bf.N, b.Cols)
	if err != nil {
		return nil, err
	}

	for _, blk := range bf.Blocks {
		if err := forwardStep(work, x, blk); err != nil {
			return nil, err
		}
	}
	for i := len(bf.Blocks) - 1; i >= 0; i-- {
		if err := backwardStep(x, bf.Blocks[i]); err != nil {
			return nil, err
		}
	}

	return x, nil
}

// forwardStep is spec §4.5 step 1: solve L1·X_block = B_sub for this
// block's pivot rows, park the result in X at the matching pivot columns,
// then propagate the update onto the block's non-pivot rows of B.
func forwardStep[T ccs.Number](b, x *kernel.Block[T], blk *frontal.FactorBlock[T]) error {
	xblock := gatherRows(b, blk.PivotRows)
	if err := kernel.SolveUnitLowerLeft(blk.LU1, xblock); err != nil {
		return err
	}
	scatterRows(x, blk.PivotCols, xblock)

	if len(blk.NonPivotRows) > 0 && blk.L2 != nil {
		t := gatherRows(b, blk.NonPivotRows)
		if err := kernel.RankKUpdateAB(t, blk.L2, xblock); err != nil {
			return err
		}
		scatterRows(b, blk.NonPivotRows, t)
	}

	return nil
}

// backwardStep is spec §4.5 step 2: correct this block's pivot-column
// slice of X for the contributions of non-pivot columns already solved by
// ancestors, then solve U1·X_block = B_block and scatter the final values
// back into X at pivot_cols.
func backwardStep[T ccs.Number](x *kernel.Block[T], blk *frontal.FactorBlock[T]) error {
	bblock := gatherRows(x, blk.PivotCols)

	if len(blk.NonPivotCols) > 0 && blk.Ut2 != nil {
		t := gatherRows(x, blk.NonPivotCols)
		if err := kernel.RankKUpdateAtB(bblock, blk.Ut2, t); err != nil {
			return err
		}
	}

	if err := kernel.SolveUpperLeft(blk.LU1, bblock); err != nil {
		return err
	}
	scatterRows(x, blk.PivotCols, bblock)

	return nil
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}

	return rows
}

// gatherRows copies src's rows named by idx into a fresh len(idx)×src.Cols
// block, in idx's order.
func gatherRows[T ccs.Number](src *kernel.Block[T], idx []int) *kernel.Block[T] {
	out, err := kernel.NewBlock[T](len(idx), src.Cols)
	if err != nil {
		return out
	}
	copyRows(out, allRows(len(idx)), src, idx)

	return out
}

// scatterRows writes src's rows back into dst at the row positions named
// by idx, in idx's order.
func scatterRows[T ccs.Number](dst *kernel.Block[T], idx []int, src *kernel.Block[T]) {
	copyRows(dst, idx, src, allRows(len(idx)))
}

func copyRows[T ccs.Number](dst *kernel.Block[T], dstRows []int, src *kernel.Block[T], srcRows []int) {
	for k := range dstRows {
		for j := 0; j < dst.Cols; j++ {
			v, _ := src.At(srcRows[k], j)
			_ = dst.Set(dstRows[k], j, v)
		}
	}
}
