package symbolic_test

import (
	"testing"

	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/symbolic"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, n int, colptr, rowind []int, values []float64) *ccs.Matrix[float64] {
	t.Helper()
	m, err := ccs.New(n, colptr, rowind, values, ccs.RealDouble)
	require.NoError(t, err)

	return m
}

func TestAnalyzeIdentityGivesOneSupercolumnPerColumn(t *testing.T) {
	// scenario 1 from spec.md: I4.
	m := mustMatrix(t, 4,
		[]int{0, 1, 2, 3, 4},
		[]int{0, 1, 2, 3},
		[]float64{1, 1, 1, 1},
	)
	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)
	require.Equal(t, 4, sym.NumSupercolumns)
	for s := 0; s < 4; s++ {
		require.Equal(t, symbolic.NoneIndex, sym.Parent[s])
		require.Equal(t, 1, sym.Size[s])
	}
}

func TestAnalyzeAntiDiagonalMergesIntoOneSupercolumn(t *testing.T) {
	// scenario 2 from spec.md: [[0,1],[1,0]].
	m := mustMatrix(t, 2,
		[]int{0, 1, 2},
		[]int{1, 0},
		[]float64{1, 1},
	)
	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)
	require.Equal(t, 1, sym.NumSupercolumns)
	require.Equal(t, 2, sym.Size[0])
	require.GreaterOrEqual(t, sym.LSize[0], 2)
}

func TestAnalyzeArrowheadGivesStarEtree(t *testing.T) {
	// scenario 3 from spec.md: 5x5 arrowhead, parents 0,1,2,3 -> 4.
	colptr := []int{0, 2, 4, 6, 8, 13}
	rowind := []int{0, 4, 1, 4, 2, 4, 3, 4, 0, 1, 2, 3, 4}
	values := []float64{1, 1, 2, 1, 3, 1, 4, 1, 1, 1, 1, 1, 5}
	m := mustMatrix(t, 5, colptr, rowind, values)
	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)
	require.Equal(t, 5, sym.NumSupercolumns)

	// column 4 (raw index 4) ends up as the last supercolumn since its own
	// outermost raw column is the largest.
	root := sym.NumSupercolumns - 1
	require.Equal(t, symbolic.NoneIndex, sym.Parent[root])
	for s := 0; s < root; s++ {
		require.Equal(t, root, sym.Parent[s])
	}
	require.Equal(t, 0, sym.FirstDescIndex[root])
	require.Equal(t, root-1, sym.LastDescIndex[root])
}

func TestAnalyzeBidiagonalChainCollapsesToOneSupercolumn(t *testing.T) {
	// scenario 4 from spec.md: 100x100 bidiagonal chain, relaxation should
	// absorb the whole one-child chain into a single supercolumn.
	n := 100
	colptr := make([]int, n+1)
	var rowind []int
	var values []float64
	for c := 0; c < n; c++ {
		colptr[c] = len(rowind)
		rowind = append(rowind, c)
		values = append(values, 2)
		if c+1 < n {
			rowind = append(rowind, c+1)
			values = append(values, -1)
		}
	}
	colptr[n] = len(rowind)
	m := mustMatrix(t, n, colptr, rowind, values)

	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)
	require.Equal(t, 1, sym.NumSupercolumns)
	require.Equal(t, n, sym.Size[0])
}

func TestAnalyzeRejectsBadColumnOrder(t *testing.T) {
	m := mustMatrix(t, 2, []int{0, 1, 2}, []int{1, 0}, []float64{1, 1})
	_, err := symbolic.Analyze(m, []int{0, 0})
	require.ErrorIs(t, err, symbolic.ErrBadColumnOrder)
}

func TestAnalyzeHonorsMaxSupercolSize(t *testing.T) {
	n := 10
	colptr := make([]int, n+1)
	var rowind []int
	var values []float64
	for c := 0; c < n; c++ {
		colptr[c] = len(rowind)
		rowind = append(rowind, c)
		values = append(values, 2)
		if c+1 < n {
			rowind = append(rowind, c+1)
			values = append(values, -1)
		}
	}
	colptr[n] = len(rowind)
	m := mustMatrix(t, n, colptr, rowind, values)

	sym, err := symbolic.Analyze(m, nil, symbolic.WithMaxSupercolSize(3))
	require.NoError(t, err)
	for _, size := range sym.Size {
		require.LessOrEqual(t, size, 3)
	}
	require.Greater(t, sym.NumSupercolumns, 1)
}
