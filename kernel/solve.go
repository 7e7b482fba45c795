package kernel

import "github.com/arai3racoon/taucs/ccs"

// SolveUnitLowerLeft computes X ← L⁻¹·X in place, where L is the k×k unit
// lower-triangular block stored in the strict lower part of lu (its
// diagonal is implicitly 1) and X is a k×n block (spec §6 kernel (2),
// used by the solve driver's forward phase, spec §4.5 step 1).
func SolveUnitLowerLeft[T ccs.Number](lu, x *Block[T]) error {
	k := lu.Rows
	if lu.Cols < k || x.Rows != k {
		return ErrDimensionMismatch
	}
	for col := 0; col < x.Cols; col++ {
		for i := 0; i < k; i++ {
			xi, _ := x.At(i, col)
			for j := 0; j < i; j++ {
				lij, _ := lu.At(i, j)
				xj, _ := x.At(j, col)
				xi -= lij * xj
			}
			_ = x.Set(i, col, xi)
		}
	}

	return nil
}

// SolveUpperLeft computes X ← U⁻¹·X in place, where U is the k×k upper
// triangular block stored in the upper part of lu (including the
// diagonal) and X is a k×n block (spec §6 kernel (3), used by the solve
// driver's backward phase, spec §4.5 step 2).
func SolveUpperLeft[T ccs.Number](lu, x *Block[T]) error {
	k := lu.Rows
	if lu.Cols < k || x.Rows != k {
		return ErrDimensionMismatch
	}
	for col := 0; col < x.Cols; col++ {
		for i := k - 1; i >= 0; i-- {
			xi, _ := x.At(i, col)
			for j := i + 1; j < k; j++ {
				uij, _ := lu.At(i, j)
				xj, _ := x.At(j, col)
				xi -= uij * xj
			}
			uii, _ := lu.At(i, i)
			_ = x.Set(i, col, xi/uii)
		}
	}

	return nil
}

// SolveUnitLowerRight computes X ← X·L⁻¹ in place, where L is the k×k
// unit lower-triangular block stored in the strict lower part of lu and X
// is an m×k block (spec §6 kernel (4)).
func SolveUnitLowerRight[T ccs.Number](lu, x *Block[T]) error {
	k := lu.Rows
	if lu.Cols < k || x.Cols != k {
		return ErrDimensionMismatch
	}
	for row := 0; row < x.Rows; row++ {
		for j := k - 1; j >= 0; j-- {
			xj, _ := x.At(row, j)
			for i := j + 1; i < k; i++ {
				lij, _ := lu.At(i, j)
				xi, _ := x.At(row, i)
				xj -= xi * lij
			}
			_ = x.Set(row, j, xj)
		}
	}

	return nil
}
