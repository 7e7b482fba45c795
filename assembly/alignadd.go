package assembly

import (
	"golang.org/x/sync/errgroup"

	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/frontal"
)

// AlignAdd performs a full align-add of src into dst (spec §4.4: the
// descendant is "fully contained" — L_member ∧ U_member): every live cell
// of src is mapped through mapRows/mapCols into dst and accumulated, after
// which src is emptied (its contribution has been fully absorbed).
//
// mapRows and mapCols must already be populated for every row/column dst
// holds (NoMap elsewhere); this is the O(1) hotspot path spec §4.4
// describes as "the central correctness and performance hotspot", split
// recursively above cfg.AlignAddSmall per spec §5 via errgroup.
func AlignAdd[T ccs.Number](dst, src *frontal.ContributionBlock[T], mapRows, mapCols []int, cfg Config) error {
	if src == nil || src.Empty() {
		return nil
	}
	if err := alignAddRange(dst, src, mapRows, mapCols, 0, src.M, cfg.AlignAddSmall); err != nil {
		return err
	}
	src.M, src.N = 0, 0
	src.Rows, src.Columns, src.RowLoc, src.ColLoc = nil, nil, nil, nil

	return nil
}

func alignAddRange[T ccs.Number](dst, src *frontal.ContributionBlock[T], mapRows, mapCols []int, lo, hi, small int) error {
	if hi-lo > small {
		mid := lo + (hi-lo)/2
		g := new(errgroup.Group)
		g.Go(func() error { return alignAddRange(dst, src, mapRows, mapCols, lo, mid, small) })
		g.Go(func() error { return alignAddRange(dst, src, mapRows, mapCols, mid, hi, small) })

		return g.Wait()
	}
	for i := lo; i < hi; i++ {
		li := mapRows[src.Rows[i]]
		if li == NoMap {
			continue
		}
		pr := src.RowLoc[i]
		for j := 0; j < src.N; j++ {
			lj := mapCols[src.Columns[j]]
			if lj == NoMap {
				continue
			}
			v, _ := src.Values.At(pr, src.ColLoc[j])
			dst.AddAtLogical(li, lj, v)
		}
	}

	return nil
}

// AlignAddRows performs the L-only align-add (spec §4.4: L_member ∧
// ¬U_member): only rows whose image under mapRows is defined are added;
// within such a row, cells whose column has no image under mapCols are
// skipped. Every added row is then compacted out of src via
// swap-with-tail.
func AlignAddRows[T ccs.Number](dst, src *frontal.ContributionBlock[T], mapRows, mapCols []int, cfg Config) error {
	if src == nil || src.Empty() {
		return nil
	}

	consumed := make([]int, 0, src.M)
	for _, r := range append([]int(nil), src.Rows...) {
		li := mapRows[r]
		if li == NoMap {
			continue
		}
		idx := src.IndexOfRow(r)
		if idx < 0 {
			continue
		}
		pr := src.RowLoc[idx]
		for j := 0; j < src.N; j++ {
			lj := mapCols[src.Columns[j]]
			if lj == NoMap {
				continue
			}
			v, _ := src.Values.At(pr, src.ColLoc[j])
			dst.AddAtLogical(li, lj, v)
		}
		consumed = append(consumed, r)
	}
	for _, r := range consumed {
		if err := src.CompactRow(r); err != nil {
			return err
		}
	}

	return nil
}

// AlignAddCols is AlignAddRows's column-gated counterpart (spec §4.4:
// U-only, L_member false).
func AlignAddCols[T ccs.Number](dst, src *frontal.ContributionBlock[T], mapRows, mapCols []int, cfg Config) error {
	if src == nil || src.Empty() {
		return nil
	}

	consumed := make([]int, 0, src.N)
	for _, c := range append([]int(nil), src.Columns...) {
		lj := mapCols[c]
		if lj == NoMap {
			continue
		}
		idx := src.IndexOfCol(c)
		if idx < 0 {
			continue
		}
		pc := src.ColLoc[idx]
		for i := 0; i < src.M; i++ {
			li := mapRows[src.Rows[i]]
			if li == NoMap {
				continue
			}
			v, _ := src.Values.At(src.RowLoc[i], pc)
			dst.AddAtLogical(li, lj, v)
		}
		consumed = append(consumed, c)
	}
	for _, c := range consumed {
		if err := src.CompactColumn(c); err != nil {
			return err
		}
	}

	return nil
}
