package kernel

import "github.com/arai3racoon/taucs/ccs"

// LU factors the rows×cols block blk in place using partial pivoting with
// threshold thresh ∈ (0, 1] (spec §4.4, §6).
//
// At each step k, the candidate pivot is the row of maximum modulus among
// rows k..rows-1 of the current column; among candidates within thresh of
// that maximum, the one with the smallest entry of degree is chosen
// (Markowitz-style tie break). When thresh == 1, degree is ignored and the
// maximum-modulus row is taken directly. degree, if non-nil, must have
// length rows and is permuted in lockstep with blk's rows so it continues
// to describe "the degree of the row now at this physical position."
//
// blk is overwritten with the standard compact LU representation: strict
// lower entries hold L's multipliers, the upper triangle (including the
// diagonal) holds U. The returned pivot slice has length rows and records,
// for each final physical row position, the original row index that ended
// up there. rowPivots is the number of columns that received a nonzero
// pivot; rowPivots < min(rows, cols) signals a singular leading block
// (spec §9: callers must surface this as a numeric failure, not invent a
// unit pivot).
func LU[T ccs.Number](blk *Block[T], thresh float64, degree []int) (pivot []int, rowPivots int, err error) {
	if blk.Rows <= 0 || blk.Cols <= 0 {
		return nil, 0, ErrBadShape
	}
	if thresh <= 0 || thresh > 1 {
		return nil, 0, ErrBadShape
	}
	if degree != nil && len(degree) != blk.Rows {
		return nil, 0, ErrDimensionMismatch
	}

	trait := NewTrait[T]()
	rows, cols := blk.Rows, blk.Cols

	pivot = make([]int, rows)
	for i := range pivot {
		pivot[i] = i
	}

	kmax := rows
	if cols < kmax {
		kmax = cols
	}

	for k := 0; k < kmax; k++ {
		maxAbs := 0.0
		for i := k; i < rows; i++ {
			v, _ := blk.At(i, k)
			if a := trait.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
		if maxAbs == 0 {
			break
		}

		best := -1
		bestDeg := 0
		for i := k; i < rows; i++ {
			v, _ := blk.At(i, k)
			a := trait.Abs(v)
			if a == 0 || a < thresh*maxAbs {
				continue
			}
			if thresh >= 1 {
				best = i

				break
			}
			d := 0
			if degree != nil {
				d = degree[i]
			}
			if best == -1 || d < bestDeg {
				best, bestDeg = i, d
			}
		}
		if best == -1 {
			break
		}

		if best != k {
			blk.SwapLines(best, k)
			pivot[best], pivot[k] = pivot[k], pivot[best]
			if degree != nil {
				degree[best], degree[k] = degree[k], degree[best]
			}
		}

		pivVal, _ := blk.At(k, k)
		for i := k + 1; i < rows; i++ {
			lik, _ := blk.At(i, k)
			factor := lik / pivVal
			_ = blk.Set(i, k, factor)
			for j := k + 1; j < cols; j++ {
				aij, _ := blk.At(i, j)
				akj, _ := blk.At(k, j)
				_ = blk.Set(i, j, aij-factor*akj)
			}
		}
		rowPivots = k + 1
	}

	return pivot, rowPivots, nil
}
