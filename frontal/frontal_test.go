package frontal_test

import (
	"testing"

	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/frontal"
	"github.com/stretchr/testify/require"
)

func TestNewContributionBlockIdentityMaps(t *testing.T) {
	cb, err := frontal.New[float64]([]int{5, 7}, []int{2, 3, 9})
	require.NoError(t, err)
	require.Equal(t, 2, cb.M)
	require.Equal(t, 3, cb.N)
	require.False(t, cb.Empty())

	require.NoError(t, cb.Values.Set(0, 0, 1.5))
	v, ok := cb.At(5, 2)
	require.True(t, ok)
	require.Equal(t, 1.5, v)

	_, ok = cb.At(99, 2)
	require.False(t, ok)
}

func TestContributionBlockAddAccumulates(t *testing.T) {
	cb, err := frontal.New[float64]([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	require.True(t, cb.Add(0, 1, 3.0))
	require.True(t, cb.Add(0, 1, 4.0))
	v, ok := cb.At(0, 1)
	require.True(t, ok)
	require.Equal(t, 7.0, v)
	require.False(t, cb.Add(9, 9, 1.0))
}

func TestContributionBlockCompactColumnSwapsWithTail(t *testing.T) {
	cb, err := frontal.New[float64]([]int{0, 1}, []int{10, 20, 30})
	require.NoError(t, err)
	require.NoError(t, cb.Values.Set(0, 0, 1))
	require.NoError(t, cb.Values.Set(0, 1, 2))
	require.NoError(t, cb.Values.Set(0, 2, 3))

	require.NoError(t, cb.CompactColumn(20))
	require.Equal(t, 2, cb.N)
	require.Equal(t, -1, cb.IndexOfCol(20))

	// column 30's value must still be reachable at its original physical slot.
	v, ok := cb.At(0, 30)
	require.True(t, ok)
	require.Equal(t, 3.0, v)

	require.ErrorIs(t, cb.CompactColumn(20), frontal.ErrNotMember)
}

func TestContributionBlockCompactRowToEmpty(t *testing.T) {
	cb, err := frontal.New[float64]([]int{0, 1}, []int{0})
	require.NoError(t, err)
	require.NoError(t, cb.CompactRow(0))
	require.NoError(t, cb.CompactRow(1))
	require.True(t, cb.Empty())
}

func TestNewFactorBlockAllocatesExpectedPanels(t *testing.T) {
	fb, err := frontal.NewFactorBlock[float64]([]int{0}, []int{0}, []int{1, 2}, []int{1, 2})
	require.NoError(t, err)
	require.True(t, fb.Valid)
	require.Equal(t, 1, fb.LU1.Rows)
	require.Equal(t, 1, fb.LU1.Cols)
	require.Equal(t, 2, fb.L2.Rows)
	require.Equal(t, 1, fb.L2.Cols)
	require.Equal(t, 2, fb.Ut2.Rows)
	require.Equal(t, 1, fb.Ut2.Cols)
	require.False(t, fb.HasContribution())
}

func TestNewFactorBlockIdentityHasNoPanels(t *testing.T) {
	// scenario 1 from spec.md: identity, every LU1 = [1], L2 and Ut2 empty.
	fb, err := frontal.NewFactorBlock[float64]([]int{0}, []int{0}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, fb.LU1.Set(0, 0, 1))
	v, _ := fb.LU1.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Nil(t, fb.L2)
	require.Nil(t, fb.Ut2)
}

func TestNewFactorBlockRejectsEmptyPivots(t *testing.T) {
	_, err := frontal.NewFactorBlock[float64](nil, []int{0}, nil, nil)
	require.ErrorIs(t, err, frontal.ErrBadShape)
}

func TestBlockedFactorValidReflectsBlocks(t *testing.T) {
	fb1, err := frontal.NewFactorBlock[float64]([]int{0}, []int{0}, nil, nil)
	require.NoError(t, err)
	fb2, err := frontal.NewFactorBlock[float64]([]int{1}, []int{1}, nil, nil)
	require.NoError(t, err)

	bf := frontal.NewBlockedFactor(2, 2, ccs.RealDouble, []*frontal.FactorBlock[float64]{fb1, fb2})
	require.Equal(t, 2, bf.NumBlocks())
	require.True(t, bf.Valid())

	fb2.Valid = false
	require.False(t, bf.Valid())
}
