package numeric_test

import (
	"testing"

	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/numeric"
	"github.com/arai3racoon/taucs/symbolic"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, n int, colptr, rowind []int, values []float64) *ccs.Matrix[float64] {
	t.Helper()
	m, err := ccs.New(n, colptr, rowind, values, ccs.RealDouble)
	require.NoError(t, err)

	return m
}

func TestFactorIdentityGivesTrivialBlocks(t *testing.T) {
	// scenario 1 from spec.md: I4, every LU1 = [1], L2/Ut2 empty.
	m := mustMatrix(t, 4,
		[]int{0, 1, 2, 3, 4},
		[]int{0, 1, 2, 3},
		[]float64{1, 1, 1, 1},
	)
	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)

	bf, err := numeric.Factor(m, sym)
	require.NoError(t, err)
	require.True(t, bf.Valid())
	require.Equal(t, 4, bf.NumBlocks())
	for _, b := range bf.Blocks {
		v, _ := b.LU1.At(0, 0)
		require.Equal(t, 1.0, v)
		require.Nil(t, b.L2)
		require.Nil(t, b.Ut2)
		require.Nil(t, b.Contrib)
	}
}

func TestFactorAntiDiagonalChoosesSwappedPivotRows(t *testing.T) {
	// scenario 2 from spec.md: row pivots [1,0], L = I, U = I after permutation.
	m := mustMatrix(t, 2, []int{0, 1, 2}, []int{1, 0}, []float64{1, 1})
	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)

	bf, err := numeric.Factor(m, sym, numeric.WithThresh(1.0))
	require.NoError(t, err)
	require.True(t, bf.Valid())
	require.Equal(t, 1, bf.NumBlocks())

	b := bf.Blocks[0]
	require.Equal(t, []int{1, 0}, b.PivotRows)
	u00, _ := b.LU1.At(0, 0)
	u01, _ := b.LU1.At(0, 1)
	u10, _ := b.LU1.At(1, 0)
	u11, _ := b.LU1.At(1, 1)
	require.Equal(t, 1.0, u00)
	require.Equal(t, 0.0, u01)
	require.Equal(t, 0.0, u10)
	require.Equal(t, 1.0, u11)
}

func arrowhead(t *testing.T) *ccs.Matrix[float64] {
	t.Helper()
	colptr := []int{0, 2, 4, 6, 8, 13}
	rowind := []int{0, 4, 1, 4, 2, 4, 3, 4, 0, 1, 2, 3, 4}
	values := []float64{1, 1, 2, 1, 3, 1, 4, 1, 1, 1, 1, 1, 5}

	return mustMatrix(t, 5, colptr, rowind, values)
}

func TestFactorArrowheadAccumulatesSchurComplementAtRoot(t *testing.T) {
	// scenario 3 from spec.md: each leaf contributes -1/(i+1) to the root's
	// (4,4) entry; 5 - (1 + 1/2 + 1/3 + 1/4) = 2.91666...
	m := arrowhead(t)
	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)

	bf, err := numeric.Factor(m, sym)
	require.NoError(t, err)
	require.True(t, bf.Valid())
	require.Equal(t, 5, bf.NumBlocks())

	root := bf.Blocks[sym.NumSupercolumns-1]
	require.Equal(t, []int{4}, root.PivotRows)
	got, _ := root.LU1.At(0, 0)
	require.InDelta(t, 5.0-(1.0+0.5+1.0/3.0+0.25), got, 1e-9)
	// rows 0-3 were already pivoted by the leaves, so FocusColumns must not
	// re-read their stale raw A entries into the root's front: the root is a
	// genuine 1x1 leaf block with no non-pivot rows left to carry.
	require.Empty(t, root.NonPivotRows)
	require.Nil(t, root.L2)
}

func TestFactorArrowheadParallelMatchesSequential(t *testing.T) {
	m := arrowhead(t)
	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)

	seq, err := numeric.Factor(m, sym)
	require.NoError(t, err)
	par, err := numeric.Factor(m, sym, numeric.WithNProc(4))
	require.NoError(t, err)

	root := sym.NumSupercolumns - 1
	seqV, _ := seq.Blocks[root].LU1.At(0, 0)
	parV, _ := par.Blocks[root].LU1.At(0, 0)
	require.InDelta(t, seqV, parV, 1e-9)
}

func TestFactorRejectsMismatchedSize(t *testing.T) {
	m := mustMatrix(t, 2, []int{0, 1, 2}, []int{1, 0}, []float64{1, 1})
	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)

	bigger := mustMatrix(t, 4,
		[]int{0, 1, 2, 3, 4},
		[]int{0, 1, 2, 3},
		[]float64{1, 1, 1, 1},
	)
	_, err = numeric.Factor(bigger, sym)
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
}
