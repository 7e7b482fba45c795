package symbolic

import "github.com/arai3racoon/taucs/ccs"

// Symbolic is the finalized result of elimination analysis (spec §3):
// a partition of the permuted columns into supercolumns, the elimination
// tree over them, and the per-supercolumn size bounds the numeric engine
// uses to preallocate fronts.
type Symbolic struct {
	N               int
	Columns         []int // Columns[c] is the original column placed at permuted position c
	NumSupercolumns int

	Start   []int // permuted-position range [Start[s], End[s]) covered by supercolumn s
	End     []int
	Size    []int // End[s]-Start[s]
	Covered []int // alias of Size, kept for parity with the original column/supercolumn naming

	LSize []int // upper bound on supercolumn s's L column count
	USize []int // upper bound on supercolumn s's U row count

	Parent     []int // supercolumn id or NoneIndex
	FirstChild []int
	NextChild  []int
	Roots      []int // supercolumn ids with no parent, ascending
	FirstRoot  int

	FirstDescIndex []int
	LastDescIndex  []int
}

// Analyze runs symbolic elimination analysis on a, eliminating columns in
// the order given by columnOrder (a permutation of 0..n-1; nil means
// identity order, i.e. the caller has already applied its own fill-reducing
// permutation to columnOrder upstream).
func Analyze[T ccs.Number](a *ccs.Matrix[T], columnOrder []int, opts ...Option) (*Symbolic, error) {
	if a.N != len(a.Colptr)-1 {
		return nil, ErrNotSquare
	}
	n := a.N
	if err := a.ValidateSquareNonEmptyColumns(); err != nil {
		return nil, err
	}

	order := columnOrder
	if order == nil {
		order = make([]int, n)
		for i := range order {
			order[i] = i
		}
	}
	invOrder, err := invertPermutation(order, n)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	et := eliminationTree(a, order, invOrder, cfg.UnionByRank)

	naiveCost := make([]int, n)
	for c := 0; c < n; c++ {
		rows, _ := a.Col(order[c])
		naiveCost[c] = len(rows)
		if naiveCost[c] == 0 {
			naiveCost[c] = 1
		}
	}

	build := groupSupercolumns(n, et.parent, et.lsize, et.usize, naiveCost, cfg)

	sym := &Symbolic{
		N:               n,
		Columns:         order,
		NumSupercolumns: build.NumSC,
		Start:           build.Lo,
		End:             make([]int, build.NumSC),
		Size:            make([]int, build.NumSC),
		Covered:         make([]int, build.NumSC),
		LSize:           make([]int, build.NumSC),
		USize:           make([]int, build.NumSC),
		Parent:          build.Parent,
		FirstChild:      make([]int, build.NumSC),
		NextChild:       make([]int, build.NumSC),
		FirstDescIndex:  make([]int, build.NumSC),
		LastDescIndex:   make([]int, build.NumSC),
	}

	for s := 0; s < build.NumSC; s++ {
		sym.End[s] = build.Hi[s] + 1
		sym.Size[s] = sym.End[s] - sym.Start[s]
		sym.Covered[s] = sym.Size[s]
		sym.LSize[s] = et.lsize[build.Hi[s]]
		sym.USize[s] = et.usize[build.Hi[s]]
		sym.FirstChild[s] = NoneIndex
		sym.NextChild[s] = NoneIndex
		sym.FirstDescIndex[s] = s
		// Postorder numbering packs every node's descendants into the
		// contiguous range immediately below its own index (spec §8); a
		// leaf's range [s, s-1] is empty, matching FirstDescIndex[s] == s.
		sym.LastDescIndex[s] = s - 1
	}

	for s := 0; s < build.NumSC; s++ {
		p := sym.Parent[s]
		if p == NoneIndex {
			sym.Roots = append(sym.Roots, s)

			continue
		}
		sym.NextChild[s] = sym.FirstChild[p]
		sym.FirstChild[p] = s
	}

	for s := 0; s < build.NumSC; s++ {
		p := sym.Parent[s]
		if p != NoneIndex && sym.FirstDescIndex[p] > sym.FirstDescIndex[s] {
			sym.FirstDescIndex[p] = sym.FirstDescIndex[s]
		}
	}

	sym.FirstRoot = NoneIndex
	if len(sym.Roots) > 0 {
		sym.FirstRoot = sym.Roots[0]
	}

	return sym, nil
}

func invertPermutation(order []int, n int) ([]int, error) {
	if len(order) != n {
		return nil, ErrBadColumnOrder
	}
	inv := make([]int, n)
	seen := make([]bool, n)
	for pos, col := range order {
		if col < 0 || col >= n || seen[col] {
			return nil, ErrBadColumnOrder
		}
		seen[col] = true
		inv[col] = pos
	}

	return inv, nil
}
