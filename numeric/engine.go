package numeric

import (
	"log/slog"
	"sync"

	"github.com/arai3racoon/taucs/assembly"
	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/frontal"
	"github.com/arai3racoon/taucs/kernel"
	"github.com/arai3racoon/taucs/symbolic"
)

// engine holds the shared workspaces and inputs one Factor call threads
// through every supercolumn (spec §3 "ownership rules", §5 "shared
// resources").
type engine[T ccs.Number] struct {
	a   *ccs.Matrix[T]
	at  *ccs.Matrix[T] // private row-oriented copy, spec §3
	sym *symbolic.Symbolic
	opt Options

	mapRows []int // shared, lock-free: disjoint by supercolumn (spec §5)
	cols    *colsPool

	clearedMu sync.RWMutex
	cleared   []bool // column_cleared, permanent once a column is pivoted

	pivotedMu sync.RWMutex
	pivoted   []bool // row_pivoted, permanent once a row is chosen as a pivot

	blocks []*frontal.FactorBlock[T]
}

func newEngine[T ccs.Number](a *ccs.Matrix[T], sym *symbolic.Symbolic, opt Options) *engine[T] {
	n := a.N
	capacity := opt.NProc
	if capacity < 1 {
		capacity = 1
	}

	return &engine[T]{
		a:       a,
		at:      a.Transpose(),
		sym:     sym,
		opt:     opt,
		mapRows: assembly.NewMap(n),
		cols:    newColsPool(n, capacity),
		cleared: make([]bool, n),
		pivoted: make([]bool, n),
		blocks:  make([]*frontal.FactorBlock[T], sym.NumSupercolumns),
	}
}

func (e *engine[T]) children(s int) []int {
	var out []int
	for c := e.sym.FirstChild[s]; c != symbolic.NoneIndex; c = e.sym.NextChild[c] {
		out = append(out, c)
	}

	return out
}

func (e *engine[T]) onlyChildOf(s, parent int) bool {
	return e.sym.FirstChild[parent] == s && e.sym.NextChild[s] == symbolic.NoneIndex
}

func (e *engine[T]) pivotColumnsOf(s int) []int {
	return e.sym.Columns[e.sym.Start[s]:e.sym.End[s]]
}

func (e *engine[T]) liveDescendants(s int) []*frontal.ContributionBlock[T] {
	var out []*frontal.ContributionBlock[T]
	for d := e.sym.FirstDescIndex[s]; d < s; d++ {
		if fb := e.blocks[d]; fb != nil && fb.HasContribution() {
			out = append(out, fb.Contrib)
		}
	}

	return out
}

func (e *engine[T]) log(msg string, args ...any) {
	if e.opt.Logger != nil {
		e.opt.Logger.Debug(msg, args...)
	}
}

// factorOne runs the complete per-supercolumn algorithm of spec §4.4:
// allocate, focus columns, dense LU, focus rows, triangular solve, build
// contribution block, align-add descendants, only-child rearrangement,
// cleanup. It requires every descendant of s (as named by
// sym.FirstDescIndex[s]..s-1) to have already been factored.
func (e *engine[T]) factorOne(s int) error {
	e.log("numeric: factoring supercolumn", slog.Int("id", s))

	pivotCols := e.pivotColumnsOf(s)
	descendants := e.liveDescendants(s)

	e.pivotedMu.RLock()
	lu1, rows, err := assembly.FocusColumns(e.a, pivotCols, descendants, e.mapRows, e.pivoted)
	e.pivotedMu.RUnlock()
	if err != nil {
		return err
	}

	e.clearedMu.Lock()
	for _, c := range pivotCols {
		e.cleared[c] = true
	}
	e.clearedMu.Unlock()

	degree := rowDegree(lu1)
	pivotPerm, rowPivots, err := kernel.LU(lu1, e.opt.Thresh, degree)
	if err != nil {
		return err
	}

	permutedRows := make([]int, len(rows))
	for pos, origPhys := range pivotPerm {
		permutedRows[pos] = rows[origPhys]
	}
	pivotRows := append([]int(nil), permutedRows[:rowPivots]...)
	nonPivotRows := append([]int(nil), permutedRows[rowPivots:]...)

	assembly.ResetMap(e.mapRows, rows)

	e.pivotedMu.Lock()
	for _, r := range pivotRows {
		e.pivoted[r] = true
	}
	e.pivotedMu.Unlock()

	if rowPivots < len(pivotCols) {
		// Numeric failure (spec §9 open question): a singular leading
		// block never gets a silently-invented unit pivot, it poisons
		// this block instead, caught later by BlockedFactor.Validate.
		fb := &frontal.FactorBlock[T]{
			PivotCols:    append([]int(nil), pivotCols...),
			PivotRows:    pivotRows,
			NonPivotRows: nonPivotRows,
		}
		if rowPivots > 0 {
			lu1Final, ferr := kernel.NewBlock[T](rowPivots, len(pivotCols))
			if ferr != nil {
				return ferr
			}
			copyInto(lu1Final, lu1, 0, 0, rowPivots, len(pivotCols))
			fb.LU1 = lu1Final
		}
		e.blocks[s] = fb

		return nil
	}

	mapCols := e.cols.acquire()
	e.clearedMu.RLock()
	ut2Raw, nonPivotCols, err := assembly.FocusRows(e.at, pivotRows, e.cleared, descendants, mapCols)
	e.clearedMu.RUnlock()
	if err != nil {
		e.cols.release(mapCols, nonPivotCols)

		return err
	}

	// FocusRows just read every live column a descendant still has for each
	// of pivotRows (skipping only already-cleared columns, whose value was
	// already absorbed when that column itself was pivoted), so a pivot
	// row's entry in any descendant is now fully spent: compact it out
	// before a further ancestor's FocusColumns/FocusRows can see it again.
	for _, r := range pivotRows {
		for _, d := range descendants {
			if d == nil || d.Empty() {
				continue
			}
			if d.IndexOfRow(r) >= 0 {
				if err := d.CompactRow(r); err != nil {
					e.cols.release(mapCols, nonPivotCols)

					return err
				}
			}
		}
	}

	fb, err := frontal.NewFactorBlock[T](pivotCols, pivotRows, nonPivotCols, nonPivotRows)
	if err != nil {
		e.cols.release(mapCols, nonPivotCols)

		return err
	}
	copyInto(fb.LU1, lu1, 0, 0, rowPivots, len(pivotCols))
	if fb.L2 != nil {
		copyInto(fb.L2, lu1, rowPivots, 0, len(nonPivotRows), len(pivotCols))
	}

	if ut2Raw != nil {
		// Ut2 = (L1⁻¹·A12)ᵀ: solve each row of ut2Raw against L1ᵀ.
		for row := 0; row < ut2Raw.Rows; row++ {
			for j := 1; j < rowPivots; j++ {
				for i := 0; i < j; i++ {
					lji, _ := fb.LU1.At(j, i)
					xi, _ := ut2Raw.At(row, i)
					xj, _ := ut2Raw.At(row, j)
					_ = ut2Raw.Set(row, j, xj-lji*xi)
				}
			}
		}
		copyInto(fb.Ut2, ut2Raw, 0, 0, ut2Raw.Rows, ut2Raw.Cols)

		if len(nonPivotRows) > 0 {
			contrib, cerr := frontal.New[T](nonPivotRows, nonPivotCols)
			if cerr != nil {
				e.cols.release(mapCols, nonPivotCols)

				return cerr
			}
			if err := kernel.RankKUpdateABt(contrib.Values, fb.L2, fb.Ut2); err != nil {
				e.cols.release(mapCols, nonPivotCols)

				return err
			}
			fb.Contrib = contrib

			if err := e.alignAddDescendants(fb, descendants, mapCols); err != nil {
				e.cols.release(mapCols, nonPivotCols)

				return err
			}
		}
	}

	e.cols.release(mapCols, nonPivotCols)

	if parent := e.sym.Parent[s]; parent != symbolic.NoneIndex && fb.HasContribution() && e.onlyChildOf(s, parent) {
		e.rearrangeForParent(fb, parent)
	}

	// L_member/U_member only describe this front's own focus/align-add
	// round; whatever a descendant still carries forward gets fresh flags
	// from whichever ancestor focuses it next (spec §4.4).
	for _, d := range descendants {
		d.LMember, d.UMember = false, false
	}
	for d := e.sym.FirstDescIndex[s]; d < s; d++ {
		if db := e.blocks[d]; db != nil && db.Contrib != nil && db.Contrib.Empty() {
			db.Contrib = nil
		}
	}

	e.blocks[s] = fb

	return nil
}

// alignAddDescendants performs spec §4.4's "assemble from descendants into
// the new block" step: each live descendant that matched one of this
// front's pivot columns or rows (FocusColumns/FocusRows having set its
// UMember/LMember flags) gets its still-live cells scattered into fb's own
// contribution block, through mapRows (reusing the engine's shared
// workspace, valid here because it was reset to NoMap right after this
// front's LU step) and mapCols (the FocusRows call above already populated
// it over exactly fb.NonPivotCols). A descendant touched on both sides is
// fully absorbed and emptied; touched on one side only, it is gated and
// partially compacted, left live for a further ancestor.
func (e *engine[T]) alignAddDescendants(fb *frontal.FactorBlock[T], descendants []*frontal.ContributionBlock[T], mapCols []int) error {
	for i, r := range fb.NonPivotRows {
		e.mapRows[r] = i
	}
	defer assembly.ResetMap(e.mapRows, fb.NonPivotRows)

	for _, d := range descendants {
		if d == nil || d.Empty() {
			continue
		}

		var err error
		switch {
		case d.LMember && d.UMember:
			err = assembly.AlignAdd(fb.Contrib, d, e.mapRows, mapCols, e.opt.Assembly)
		case d.LMember:
			err = assembly.AlignAddRows(fb.Contrib, d, e.mapRows, mapCols, e.opt.Assembly)
		case d.UMember:
			err = assembly.AlignAddCols(fb.Contrib, d, e.mapRows, mapCols, e.opt.Assembly)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// rearrangeForParent sorts fb's NonPivotCols (and the matching Contrib
// columns / Ut2 rows in lockstep) so the parent supercolumn's own pivot
// columns lead, per spec §4.4/§5's only-child optimization.
func (e *engine[T]) rearrangeForParent(fb *frontal.FactorBlock[T], parent int) {
	parentCols := make(map[int]bool, e.sym.Size[parent])
	for _, c := range e.pivotColumnsOf(parent) {
		parentCols[c] = true
	}

	write := 0
	for i, c := range fb.NonPivotCols {
		if !parentCols[c] {
			continue
		}
		if i != write {
			fb.NonPivotCols[i], fb.NonPivotCols[write] = fb.NonPivotCols[write], fb.NonPivotCols[i]
			fb.Contrib.Columns[i], fb.Contrib.Columns[write] = fb.Contrib.Columns[write], fb.Contrib.Columns[i]
			fb.Contrib.ColLoc[i], fb.Contrib.ColLoc[write] = fb.Contrib.ColLoc[write], fb.Contrib.ColLoc[i]
			fb.Ut2.SwapLines(i, write)
		}
		write++
	}
	fb.Contrib.NumColsInParent = write
}

func rowDegree[T ccs.Number](b *kernel.Block[T]) []int {
	var zero T
	deg := make([]int, b.Rows)
	for i := 0; i < b.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			v, _ := b.At(i, j)
			if v != zero {
				deg[i]++
			}
		}
	}

	return deg
}

func copyInto[T ccs.Number](dst, src *kernel.Block[T], rowOff, colOff, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := src.At(rowOff+i, colOff+j)
			_ = dst.Set(i, j, v)
		}
	}
}
