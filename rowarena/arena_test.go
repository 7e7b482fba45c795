package rowarena_test

import (
	"testing"

	"github.com/arai3racoon/taucs/rowarena"
	"github.com/stretchr/testify/require"
)

func TestStoreAndRowsRoundTrip(t *testing.T) {
	a := rowarena.NewArena(16, 4)
	require.NoError(t, a.Store(2, []int{5, 6, 7}))
	rows, err := a.Rows(2)
	require.NoError(t, err)
	require.Equal(t, []int{5, 6, 7}, rows)
}

func TestRowsOnUnstoredSlotFails(t *testing.T) {
	a := rowarena.NewArena(16, 4)
	_, err := a.Rows(0)
	require.ErrorIs(t, err, rowarena.ErrNotLive)
}

func TestFreeThenRowsFails(t *testing.T) {
	a := rowarena.NewArena(16, 4)
	require.NoError(t, a.Store(0, []int{1}))
	require.NoError(t, a.Free(0))
	_, err := a.Rows(0)
	require.ErrorIs(t, err, rowarena.ErrNotLive)
}

func TestOutOfRange(t *testing.T) {
	a := rowarena.NewArena(16, 4)
	require.ErrorIs(t, a.Store(4, []int{1}), rowarena.ErrOutOfRange)
	require.ErrorIs(t, a.Free(-1), rowarena.ErrOutOfRange)
	_, err := a.Rows(99)
	require.ErrorIs(t, err, rowarena.ErrOutOfRange)
}

func TestGCCompactsAndReclaimsFreedSpace(t *testing.T) {
	a := rowarena.NewArena(6, 3)
	require.NoError(t, a.Store(0, []int{1, 2})) // buf[0:2]
	require.NoError(t, a.Store(1, []int{3, 4})) // buf[2:4]
	require.NoError(t, a.Free(0))
	// tail has 2 ints left (buf[4:6]); this store needs 3, forcing a GC
	// that reclaims slot 0's freed space.
	require.NoError(t, a.Store(2, []int{9, 8, 7}))
	rows1, err := a.Rows(1)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, rows1)
	rows2, err := a.Rows(2)
	require.NoError(t, err)
	require.Equal(t, []int{9, 8, 7}, rows2)
}

func TestStoreTooLargeAfterGCFails(t *testing.T) {
	a := rowarena.NewArena(4, 2)
	require.NoError(t, a.Store(0, []int{1, 2, 3, 4}))
	err := a.Store(1, []int{5})
	require.ErrorIs(t, err, rowarena.ErrTooLarge)
}

func TestStoreOverwritesLiveSlotWithoutExplicitFree(t *testing.T) {
	a := rowarena.NewArena(16, 2)
	require.NoError(t, a.Store(0, []int{1, 2}))
	require.NoError(t, a.Store(0, []int{9}))
	rows, err := a.Rows(0)
	require.NoError(t, err)
	require.Equal(t, []int{9}, rows)
}
