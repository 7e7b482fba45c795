package taucs

import (
	"sort"

	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/frontal"
	"github.com/arai3racoon/taucs/kernel"
)

type cooEntry[T ccs.Number] struct {
	row int
	val T
}

// BlockedToGlobal converts bf into two global CCS matrices L (unit lower
// triangular) and U (upper triangular) plus the row and column
// permutations P, Q such that A[P[k]][Q[k']] participates in pivot k's
// equation — precisely, L·U equals A with rows reordered by P and columns
// by Q (spec §6's "lossy conversion" of the blocked factor, made concrete
// by SPEC_FULL's supplemented-features note: P/Q as row/column images,
// L/U assembled column-by-column from each block's LU1/L2/Ut2, L's unit
// diagonal made explicit, U's diagonal taken from LU1).
//
// This is a convenience adapter for callers that want an ordinary sparse
// LU pair; numeric.Factor/solve.Solve never materialize one themselves.
func BlockedToGlobal[T ccs.Number](bf *frontal.BlockedFactor[T]) (P, Q []int, L, U *ccs.Matrix[T], err error) {
	if err := bf.Validate(); err != nil {
		return nil, nil, nil, nil, err
	}

	n := bf.N
	rowPos := make([]int, n)
	colPos := make([]int, n)
	P = make([]int, n)
	Q = make([]int, n)

	k := 0
	for _, blk := range bf.Blocks {
		for j, r := range blk.PivotRows {
			rowPos[r] = k + j
			P[k+j] = r
		}
		for j, c := range blk.PivotCols {
			colPos[c] = k + j
			Q[k+j] = c
		}
		k += len(blk.PivotRows)
	}

	var zero T
	one := kernel.NewTrait[T]().One()

	lCols := make([]map[int]T, n)
	uCols := make([]map[int]T, n)
	for i := range lCols {
		lCols[i] = make(map[int]T)
		uCols[i] = make(map[int]T)
	}

	k = 0
	for _, blk := range bf.Blocks {
		rp := len(blk.PivotRows)
		for j := 0; j < rp; j++ {
			kj := k + j

			lCols[kj][kj] = one
			for i := j + 1; i < rp; i++ {
				v, _ := blk.LU1.At(i, j)
				if v != zero {
					lCols[kj][k+i] = v
				}
			}
			if blk.L2 != nil {
				for idx, r := range blk.NonPivotRows {
					v, _ := blk.L2.At(idx, j)
					if v != zero {
						lCols[kj][rowPos[r]] = v
					}
				}
			}

			for jj := j; jj < rp; jj++ {
				v, _ := blk.LU1.At(j, jj)
				if v != zero {
					uCols[k+jj][kj] = v
				}
			}
			if blk.Ut2 != nil {
				for idx, c := range blk.NonPivotCols {
					v, _ := blk.Ut2.At(idx, j)
					if v != zero {
						uCols[colPos[c]][kj] = v
					}
				}
			}
		}
		k += rp
	}

	L = buildCCS(n, lCols, bf.Kind)
	U = buildCCS(n, uCols, bf.Kind)

	return P, Q, L, U, nil
}

func buildCCS[T ccs.Number](n int, cols []map[int]T, kind ccs.Type) *ccs.Matrix[T] {
	colptr := make([]int, n+1)
	var rowind []int
	var values []T

	for j := 0; j < n; j++ {
		entries := make([]cooEntry[T], 0, len(cols[j]))
		for row, v := range cols[j] {
			entries = append(entries, cooEntry[T]{row, v})
		}
		sort.Slice(entries, func(a, b int) bool { return entries[a].row < entries[b].row })
		for _, e := range entries {
			rowind = append(rowind, e.row)
			values = append(values, e.val)
		}
		colptr[j+1] = len(rowind)
	}

	m, _ := ccs.New(n, colptr, rowind, values, kind)

	return m
}
