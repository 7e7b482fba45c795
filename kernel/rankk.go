package kernel

import "github.com/arai3racoon/taucs/ccs"

// RankKUpdateABt computes C ← C − A·Bᵀ in place (spec §6 kernel (5)),
// used to build a fresh contribution block from a front's L2 and Ut2
// panels (spec §4.4, "Build contribution block").
func RankKUpdateABt[T ccs.Number](c, a, b *Block[T]) error {
	if c.Rows != a.Rows || c.Cols != b.Rows || a.Cols != b.Cols {
		return ErrDimensionMismatch
	}
	for j := 0; j < c.Cols; j++ {
		for i := 0; i < c.Rows; i++ {
			cij, _ := c.At(i, j)
			for k := 0; k < a.Cols; k++ {
				aik, _ := a.At(i, k)
				bjk, _ := b.At(j, k)
				cij -= aik * bjk
			}
			_ = c.Set(i, j, cij)
		}
	}

	return nil
}

// RankKUpdateAB computes C ← C − A·B in place (spec §6 kernel (6)).
func RankKUpdateAB[T ccs.Number](c, a, b *Block[T]) error {
	if c.Rows != a.Rows || c.Cols != b.Cols || a.Cols != b.Rows {
		return ErrDimensionMismatch
	}
	for j := 0; j < c.Cols; j++ {
		for i := 0; i < c.Rows; i++ {
			cij, _ := c.At(i, j)
			for k := 0; k < a.Cols; k++ {
				aik, _ := a.At(i, k)
				bkj, _ := b.At(k, j)
				cij -= aik * bkj
			}
			_ = c.Set(i, j, cij)
		}
	}

	return nil
}

// RankKUpdateAtB computes C ← C − Aᵀ·B in place (spec §6 kernel (7)).
func RankKUpdateAtB[T ccs.Number](c, a, b *Block[T]) error {
	if c.Rows != a.Cols || c.Cols != b.Cols || a.Rows != b.Rows {
		return ErrDimensionMismatch
	}
	for j := 0; j < c.Cols; j++ {
		for i := 0; i < c.Rows; i++ {
			cij, _ := c.At(i, j)
			for k := 0; k < a.Rows; k++ {
				aki, _ := a.At(k, i)
				bkj, _ := b.At(k, j)
				cij -= aki * bkj
			}
			_ = c.Set(i, j, cij)
		}
	}

	return nil
}
