package assembly

import (
	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/frontal"
	"github.com/arai3racoon/taucs/kernel"
)

type cell struct {
	i, j int
}

// FocusColumns assembles LU1's starting values for a supercolumn's pivot
// columns (spec §4.4, "Focus the supercolumn"): it gathers A's own entries
// in those columns plus any matching columns still live in descendants'
// contribution blocks, accumulating repeated rows via mapRows. Matched
// descendant columns are compacted out (swap-with-tail) and the descendant
// is marked UMember.
//
// mapRows must be NoMap-initialized at every slot this call may touch;
// FocusColumns populates it for the rows it discovers and returns the
// discovered original row indices in discovery order (so the caller can
// reset mapRows afterward via ResetMap).
//
// pivotedRows, if non-nil, marks rows already consumed as another
// supercolumn's pivot row; such a row's remaining raw A entries belong to
// that earlier block's own Ut2/back-substitution bookkeeping, not to this
// front, so FocusColumns skips them rather than re-reading a stale row
// straight from A. A nil pivotedRows disables the filter.
func FocusColumns[T ccs.Number](a *ccs.Matrix[T], pivotCols []int, descendants []*frontal.ContributionBlock[T], mapRows []int, pivotedRows []bool) (*kernel.Block[T], []int, error) {
	if len(pivotCols) == 0 {
		return nil, nil, frontal.ErrBadShape
	}

	var rows []int
	rowLocal := func(orig int) int {
		if li := mapRows[orig]; li != NoMap {
			return li
		}
		li := len(rows)
		rows = append(rows, orig)
		mapRows[orig] = li

		return li
	}

	accum := make(map[cell]T)

	for ci, col := range pivotCols {
		for _, d := range descendants {
			if d == nil || d.Empty() {
				continue
			}
			lj := d.IndexOfCol(col)
			if lj < 0 {
				continue
			}
			for li := 0; li < d.M; li++ {
				pr, pc := d.RowLoc[li], d.ColLoc[lj]
				v, _ := d.Values.At(pr, pc)
				key := cell{rowLocal(d.Rows[li]), ci}
				accum[key] += v
			}
			d.UMember = true
			if err := d.CompactColumn(col); err != nil {
				return nil, nil, err
			}
		}

		rs, vs := a.Col(col)
		for k, r := range rs {
			if r < len(pivotedRows) && pivotedRows[r] {
				continue
			}
			key := cell{rowLocal(r), ci}
			accum[key] += vs[k]
		}
	}

	if len(rows) == 0 {
		return nil, nil, frontal.ErrBadShape
	}

	lu1, err := kernel.NewBlock[T](len(rows), len(pivotCols))
	if err != nil {
		return nil, nil, err
	}
	for key, v := range accum {
		_ = lu1.Set(key.i, key.j, v)
	}

	return lu1, rows, nil
}

// FocusRows assembles Ut2's starting values for a supercolumn's chosen
// pivot rows (spec §4.4, "Focus the rows"): for each pivot row it gathers
// Aᵀ's entries restricted to columns not yet cleared, plus the matching
// row's entries still live in descendants' contribution blocks, marking
// each contributing descendant LMember. Unlike FocusColumns, descendant
// rows are not compacted here: a matched row's value has been fully read
// across all of a descendant's live columns by the time this returns, so
// the caller is expected to compact each pivot row out of every descendant
// right after this call succeeds (symmetric to FocusColumns's own
// CompactColumn, but keyed on rows instead of columns).
//
// mapCols must be NoMap-initialized at every slot this call may touch; it
// is populated for the non-pivot columns discovered, returned in discovery
// order. Ut2's shape is len(discovered columns) x len(pivotRows), matching
// frontal.FactorBlock's Ut2 layout.
func FocusRows[T ccs.Number](at *ccs.Matrix[T], pivotRows []int, cleared []bool, descendants []*frontal.ContributionBlock[T], mapCols []int) (*kernel.Block[T], []int, error) {
	if len(pivotRows) == 0 {
		return nil, nil, frontal.ErrBadShape
	}

	var cols []int
	colLocal := func(orig int) int {
		if lj := mapCols[orig]; lj != NoMap {
			return lj
		}
		lj := len(cols)
		cols = append(cols, orig)
		mapCols[orig] = lj

		return lj
	}

	accum := make(map[cell]T)

	for pi, r := range pivotRows {
		rs, vs := at.Col(r)
		for k, c := range rs {
			if c < len(cleared) && cleared[c] {
				continue
			}
			key := cell{colLocal(c), pi}
			accum[key] += vs[k]
		}

		for _, d := range descendants {
			if d == nil || d.Empty() {
				continue
			}
			li := d.IndexOfRow(r)
			if li < 0 {
				continue
			}
			for lj := 0; lj < d.N; lj++ {
				c := d.Columns[lj]
				if c < len(cleared) && cleared[c] {
					continue
				}
				pr, pc := d.RowLoc[li], d.ColLoc[lj]
				v, _ := d.Values.At(pr, pc)
				key := cell{colLocal(c), pi}
				accum[key] += v
			}
			d.LMember = true
		}
	}

	if len(cols) == 0 {
		return nil, nil, nil // ru_size == 0: no non-pivot columns for this front
	}

	ut2, err := kernel.NewBlock[T](len(cols), len(pivotRows))
	if err != nil {
		return nil, nil, err
	}
	for key, v := range accum {
		_ = ut2.Set(key.i, key.j, v)
	}

	return ut2, cols, nil
}
