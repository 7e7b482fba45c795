package frontal

import (
	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/kernel"
)

// FactorBlock is one supercolumn's slice of the global factor (spec §3):
// the pivot rows/columns chosen at this front, the dense LU1/L2/Ut2 panels
// produced by factoring it, and the contribution block handed up to its
// parent (nil once absorbed or once this block has none left to give).
type FactorBlock[T ccs.Number] struct {
	PivotCols    []int
	PivotRows    []int
	NonPivotCols []int
	NonPivotRows []int

	LU1 *kernel.Block[T] // row_pivots x col_pivots, combined L/U factors
	L2  *kernel.Block[T] // non_pivot_rows x row_pivots, lower panel
	Ut2 *kernel.Block[T] // non_pivot_cols x row_pivots, upper panel

	Contrib *ContributionBlock[T]

	Valid bool // false if any allocation in this front failed
}

// NewFactorBlock allocates LU1/L2/Ut2 at their expected shapes. A rank
// deficiency at this front leaves the caller free to shrink PivotCols and
// re-call; beyond rejecting an empty pivot-column or pivot-row list with
// ErrBadShape, NewFactorBlock never second-guesses the sizes it is given.
func NewFactorBlock[T ccs.Number](pivotCols, pivotRows, nonPivotCols, nonPivotRows []int) (*FactorBlock[T], error) {
	np, nr := len(pivotCols), len(pivotRows)
	if np == 0 || nr == 0 {
		return nil, ErrBadShape
	}
	lu1, err := kernel.NewBlock[T](nr, np)
	if err != nil {
		return nil, err
	}
	fb := &FactorBlock[T]{
		PivotCols:    append([]int(nil), pivotCols...),
		PivotRows:    append([]int(nil), pivotRows...),
		NonPivotCols: append([]int(nil), nonPivotCols...),
		NonPivotRows: append([]int(nil), nonPivotRows...),
		LU1:          lu1,
		Valid:        true,
	}
	if len(nonPivotRows) > 0 {
		l2, err := kernel.NewBlock[T](len(nonPivotRows), nr)
		if err != nil {
			fb.Valid = false

			return fb, err
		}
		fb.L2 = l2
	}
	if len(nonPivotCols) > 0 {
		ut2, err := kernel.NewBlock[T](len(nonPivotCols), nr)
		if err != nil {
			fb.Valid = false

			return fb, err
		}
		fb.Ut2 = ut2
	}

	return fb, nil
}

// HasContribution reports whether this block still has an unconsumed
// contribution to offer an ancestor.
func (fb *FactorBlock[T]) HasContribution() bool {
	return fb.Contrib != nil && !fb.Contrib.Empty()
}
