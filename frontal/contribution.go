package frontal

import (
	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/kernel"
)

// ContributionBlock is the dense "update matrix" a supercolumn's
// factorization leaves behind for its ancestors to absorb (spec §3). Its
// physical storage never grows after creation; M and N only shrink as an
// ancestor's focus/align-add steps consume rows and columns, by swapping
// the consumed logical slot with the tail — the physical slot inside
// Values never moves.
type ContributionBlock[T ccs.Number] struct {
	Values *kernel.Block[T] // physical ld == len(rows) at creation time

	M, N    int
	Rows    []int // logical index -> original row index, length M
	Columns []int // logical index -> original column index, length N
	RowLoc  []int // logical index -> physical row slot inside Values
	ColLoc  []int // logical index -> physical column slot inside Values

	NumColsInParent int
	LMember         bool
	UMember         bool
}

// New allocates a contribution block over the given original row/column
// indices, zero-initialized, with identity logical-to-physical maps.
func New[T ccs.Number](rows, cols []int) (*ContributionBlock[T], error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, ErrBadShape
	}
	values, err := kernel.NewBlock[T](len(rows), len(cols))
	if err != nil {
		return nil, err
	}
	cb := &ContributionBlock[T]{
		Values:  values,
		M:       len(rows),
		N:       len(cols),
		Rows:    append([]int(nil), rows...),
		Columns: append([]int(nil), cols...),
		RowLoc:  identity(len(rows)),
		ColLoc:  identity(len(cols)),
	}

	return cb, nil
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Empty reports whether every row or every column has been consumed.
func (cb *ContributionBlock[T]) Empty() bool { return cb.M == 0 || cb.N == 0 }

// IndexOfRow linear-scans the live row list for origRow, mirroring the
// "is_member scan" spec §4.4 describes for small dense fronts.
func (cb *ContributionBlock[T]) IndexOfRow(origRow int) int {
	for i, r := range cb.Rows {
		if r == origRow {
			return i
		}
	}

	return -1
}

// IndexOfCol is IndexOfRow's column counterpart.
func (cb *ContributionBlock[T]) IndexOfCol(origCol int) int {
	for j, c := range cb.Columns {
		if c == origCol {
			return j
		}
	}

	return -1
}

// At returns the value at original (row, col), if both are still live.
func (cb *ContributionBlock[T]) At(row, col int) (T, bool) {
	var zero T
	li := cb.IndexOfRow(row)
	if li < 0 {
		return zero, false
	}
	lj := cb.IndexOfCol(col)
	if lj < 0 {
		return zero, false
	}
	v, _ := cb.Values.At(cb.RowLoc[li], cb.ColLoc[lj])

	return v, true
}

// Add accumulates delta into the value at original (row, col).
func (cb *ContributionBlock[T]) Add(row, col int, delta T) bool {
	li := cb.IndexOfRow(row)
	if li < 0 {
		return false
	}
	lj := cb.IndexOfCol(col)
	if lj < 0 {
		return false
	}

	return cb.AddAtLogical(li, lj, delta)
}

// AddAtLogical accumulates delta at already-resolved logical row/column
// positions li, lj, skipping the linear IndexOfRow/IndexOfCol scan. This is
// the O(1) path the align-add hotspot (spec §4.4) uses once a caller has
// already built a dense original-id-to-logical-index map for this block.
func (cb *ContributionBlock[T]) AddAtLogical(li, lj int, delta T) bool {
	if li < 0 || li >= cb.M || lj < 0 || lj >= cb.N {
		return false
	}
	pr, pc := cb.RowLoc[li], cb.ColLoc[lj]
	cur, _ := cb.Values.At(pr, pc)
	_ = cb.Values.Set(pr, pc, cur+delta)

	return true
}

// CompactColumn removes original column col from the logical column list,
// swapping the consumed slot with the tail of Columns/ColLoc and
// decrementing N (spec §4.4: "compact the descendant's columns/col_loc
// arrays by swapping the consumed slot with the tail and decrementing n").
func (cb *ContributionBlock[T]) CompactColumn(col int) error {
	lj := cb.IndexOfCol(col)
	if lj < 0 {
		return ErrNotMember
	}
	last := cb.N - 1
	cb.Columns[lj] = cb.Columns[last]
	cb.ColLoc[lj] = cb.ColLoc[last]
	cb.Columns = cb.Columns[:last]
	cb.ColLoc = cb.ColLoc[:last]
	cb.N = last

	return nil
}

// CompactRow is CompactColumn's row counterpart.
func (cb *ContributionBlock[T]) CompactRow(r int) error {
	li := cb.IndexOfRow(r)
	if li < 0 {
		return ErrNotMember
	}
	last := cb.M - 1
	cb.Rows[li] = cb.Rows[last]
	cb.RowLoc[li] = cb.RowLoc[last]
	cb.Rows = cb.Rows[:last]
	cb.RowLoc = cb.RowLoc[:last]
	cb.M = last

	return nil
}
