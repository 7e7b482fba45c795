package symbolic

import (
	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/dsu"
	"github.com/arai3racoon/taucs/rowarena"
)

// NoneIndex marks the absence of a parent/child/root link.
const NoneIndex = -1

// etreeResult holds the raw, per-permuted-column output of eliminationTree:
// one entry per position in the column order, not yet grouped into
// supercolumns.
type etreeResult struct {
	parent []int
	lsize  []int
	usize  []int
}

// eliminationTree builds the column elimination tree bound from the
// symmetrized pattern of A ∪ Aᵀ (spec §4.3), restricted to strictly-upper
// neighbors in the permuted order: for permuted column c, only rows r with
// invOrder[r] < c participate in the union-find merge. This is the
// classical Liu-1986 construction; see DESIGN.md for why it replaces the
// literal unrestricted row-merge description in spec §4.3 (the
// unrestricted version produces spurious parent edges whenever a row is
// shared by more than two columns, e.g. an arrowhead pattern).
//
// Along the way, each permuted column's surviving superrow (kept in a
// rowarena.Arena) yields l_size/u_size: l_size is the number of candidate
// pivot rows accumulated into the column's own set (including itself and
// anything merged from an absorbed child), u_size is the width of its
// merged column-index pattern.
func eliminationTree[T ccs.Number](a *ccs.Matrix[T], order, invOrder []int, byRank bool) etreeResult {
	n := a.N
	at := a.Transpose()

	parent := make([]int, n)
	for i := range parent {
		parent[i] = NoneIndex
	}
	lsize := make([]int, n)
	usize := make([]int, n)

	var opts []dsu.Option
	if byRank {
		opts = append(opts, dsu.WithUnionByRank())
	}
	sets := dsu.MakeSets(n, opts...)
	root := make([]int, n)
	arena := rowarena.NewArena(a.NNZ()+2*n, n)
	arenaRdeg := make([]int, n)

	stamp := make([]int, n)
	for i := range stamp {
		stamp[i] = -1
	}

	for c := 0; c < n; c++ {
		orgC := order[c]
		root[c] = c

		buf := make([]int, 0, 4)
		add := func(pc int) {
			if stamp[pc] != c {
				stamp[pc] = c
				buf = append(buf, pc)
			}
		}
		add(c)
		rdeg := 1

		upper := upperNeighbors(a, at, orgC, invOrder, c)
		for _, pr := range upper {
			s, _ := sets.Find(pr)
			rs := root[s]
			if rs == c {
				continue
			}
			if old, err := arena.Rows(rs); err == nil {
				for _, pc := range old {
					add(pc)
				}
			}
			rdeg += arenaRdeg[rs]
			_ = arena.Free(rs)

			parent[rs] = c
			newrep, _ := sets.Union(s, c)
			root[newrep] = c
		}

		lsize[c] = rdeg
		usize[c] = len(buf)
		arenaRdeg[c] = rdeg - 1
		_ = arena.Store(c, buf)
	}

	return etreeResult{parent: parent, lsize: lsize, usize: usize}
}

// upperNeighbors returns the deduplicated permuted positions of the rows
// touched by column orgC in A ∪ Aᵀ whose permuted position is strictly
// less than c.
func upperNeighbors[T ccs.Number](a, at *ccs.Matrix[T], orgC int, invOrder []int, c int) []int {
	out := make([]int, 0, 8)
	seen := make(map[int]bool, 8)
	collect := func(rows []int) {
		for _, r := range rows {
			pr := invOrder[r]
			if pr < c && !seen[pr] {
				seen[pr] = true
				out = append(out, pr)
			}
		}
	}
	rows, _ := a.Col(orgC)
	collect(rows)
	rows2, _ := at.Col(orgC)
	collect(rows2)

	return out
}
