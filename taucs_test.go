package taucs_test

import (
	"testing"

	taucs "github.com/arai3racoon/taucs"
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

// at scans column col of m for row, returning 0 if absent; m's columns are
// small and unsorted-within-tolerance here, a linear scan is fine for tests.
func at(m *ccs.Matrix[float64], row, col int) float64 {
	rs, vs := m.Col(col)
	for k, r := range rs {
		if r == row {
			return vs[k]
		}
	}

	return 0
}

func TestBlockedToGlobalArrowheadRecoversFactorization(t *testing.T) {
	colptr := []int{0, 2, 4, 6, 8, 13}
	rowind := []int{0, 4, 1, 4, 2, 4, 3, 4, 0, 1, 2, 3, 4}
	values := []float64{1, 1, 2, 1, 3, 1, 4, 1, 1, 1, 1, 1, 5}
	m := mustMatrix(t, 5, colptr, rowind, values)

	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)
	bf, err := taucs.NumericFactor[float64](m, sym)
	require.NoError(t, err)
	require.True(t, bf.Valid())

	P, Q, L, U, err := taucs.BlockedToGlobal[float64](bf)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, P)
	require.Equal(t, []int{0, 1, 2, 3, 4}, Q)

	for j := 0; j < 5; j++ {
		require.InDelta(t, 1.0, at(L, j, j), 1e-9)
	}
	wantL4 := []float64{1.0, 0.5, 1.0 / 3.0, 0.25}
	for j, want := range wantL4 {
		require.InDelta(t, want, at(L, 4, j), 1e-9)
	}
	// no other entries: each leaf column has exactly its diagonal plus row 4.
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			if i == j {
				continue
			}
			require.Zero(t, at(L, i, j))
		}
	}

	require.InDelta(t, 1.0, at(U, 0, 0), 1e-9)
	require.InDelta(t, 2.0, at(U, 1, 1), 1e-9)
	require.InDelta(t, 3.0, at(U, 2, 2), 1e-9)
	require.InDelta(t, 4.0, at(U, 3, 3), 1e-9)
	for i := 0; i < 4; i++ {
		require.InDelta(t, 1.0, at(U, i, 4), 1e-9)
	}
	require.InDelta(t, 5.0-(1.0+0.5+1.0/3.0+0.25), at(U, 4, 4), 1e-9)
}

func TestBlockedToGlobalIdentityIsTrivial(t *testing.T) {
	m := mustMatrix(t, 3, []int{0, 1, 2, 3}, []int{0, 1, 2}, []float64{1, 1, 1})
	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)
	bf, err := taucs.NumericFactor[float64](m, sym)
	require.NoError(t, err)

	P, Q, L, U, err := taucs.BlockedToGlobal[float64](bf)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, P)
	require.Equal(t, []int{0, 1, 2}, Q)
	for i := 0; i < 3; i++ {
		require.InDelta(t, 1.0, at(L, i, i), 1e-9)
		require.InDelta(t, 1.0, at(U, i, i), 1e-9)
	}
}

func TestBlockedToGlobalRejectsUnfactoredBlock(t *testing.T) {
	// column 0 stores only an explicit structural zero: its block never
	// gets a pivot, so the factor as a whole must come back invalid.
	m := mustMatrix(t, 2, []int{0, 1, 2}, []int{0, 1}, []float64{0, 1})
	sym, err := symbolic.Analyze(m, nil)
	require.NoError(t, err)
	bf, err := taucs.NumericFactor[float64](m, sym)
	require.NoError(t, err)
	require.False(t, bf.Valid())

	_, _, _, _, err = taucs.BlockedToGlobal[float64](bf)
	require.Error(t, err)
}
