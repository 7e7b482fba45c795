package symbolic

import "github.com/arai3racoon/taucs/dsu"

// scBuild is the result of grouping raw columns into supercolumns,
// renumbered 0..NumSC-1 in increasing order of their outermost raw column
// (which preserves postorder: a supercolumn's parent always has a larger
// outermost raw column than any of its children's).
type scBuild struct {
	NumSC  int
	Lo, Hi []int // raw-column range [Lo[s], Hi[s]] covered by supercolumn s
	Parent []int // supercolumn id or NoneIndex
}

// groupSupercolumns absorbs one-child chains of the raw per-column
// elimination tree into supercolumns (spec §4.3). Raw column i may merge
// upward into parent[i]'s group only when parent[i] has exactly one child
// (i is not competing with a sibling) and the chain accumulated so far
// still respects cfg's size/overfill limits.
//
// Because parent[i] is always > i (eliminationTree only ever creates
// forward edges), any run this absorbs is contiguous in raw-column order.
func groupSupercolumns(n int, parent, lsize, usize, naiveCost []int, cfg Config) scBuild {
	childCount := make([]int, n)
	for i := 0; i < n; i++ {
		if parent[i] != NoneIndex {
			childCount[parent[i]]++
		}
	}

	merge := dsu.MakeSets(n)
	chainLen := make([]int, n)
	chainCost := make([]int, n)
	for i := 0; i < n; i++ {
		chainLen[i] = 1
		chainCost[i] = naiveCost[i]
	}

	for i := 0; i < n; i++ {
		p := parent[i]
		if p == NoneIndex || childCount[p] != 1 {
			continue
		}
		r, _ := merge.Find(i)
		if cfg.MaxSupercolSize > 0 && chainLen[r]+1 > cfg.MaxSupercolSize {
			continue
		}
		combinedNaive := chainCost[r] + naiveCost[p]
		if chainLen[r]+1 > cfg.RelaxRuleSize {
			combinedCost := lsize[p] * usize[p]
			if combinedNaive > 0 && float64(combinedCost) > cfg.MaxOverfillRatio*float64(combinedNaive) {
				continue
			}
		}

		newrep, _ := merge.Union(i, p)
		chainLen[newrep] = chainLen[r] + 1
		chainCost[newrep] = combinedNaive
	}

	group := make([]int, n)
	for i := 0; i < n; i++ {
		group[i], _ = merge.Find(i)
	}

	lo := make(map[int]int, n)
	hi := make(map[int]int, n)
	for i := 0; i < n; i++ {
		g := group[i]
		if v, ok := lo[g]; !ok || i < v {
			lo[g] = i
		}
		if v, ok := hi[g]; !ok || i > v {
			hi[g] = i
		}
	}

	// order group roots by their outermost (largest) raw column so the
	// renumbering preserves the postorder property.
	outer := make([]int, 0, len(hi))
	for g := range hi {
		outer = append(outer, g)
	}
	for i := 1; i < len(outer); i++ {
		for j := i; j > 0 && hi[outer[j]] < hi[outer[j-1]]; j-- {
			outer[j], outer[j-1] = outer[j-1], outer[j]
		}
	}

	scOf := make(map[int]int, len(outer)) // raw group root -> supercolumn id
	for id, g := range outer {
		scOf[g] = id
	}

	build := scBuild{
		NumSC:  len(outer),
		Lo:     make([]int, len(outer)),
		Hi:     make([]int, len(outer)),
		Parent: make([]int, len(outer)),
	}
	for id, g := range outer {
		build.Lo[id] = lo[g]
		build.Hi[id] = hi[g]
		outerRaw := hi[g] // the chain's topmost raw column
		p := parent[outerRaw]
		if p == NoneIndex {
			build.Parent[id] = NoneIndex
		} else {
			build.Parent[id] = scOf[group[p]]
		}
	}

	return build
}
