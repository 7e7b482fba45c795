package kernel

import "github.com/arai3racoon/taucs/ccs"

// Block is a dense rows×cols matrix stored column-major with leading
// dimension ld (spec §3: "dense values stored column-major, leading
// dimension ld = m"). ld may exceed rows, letting a block be a logical
// sub-view of a larger backing allocation; NewBlock and Compress always
// produce blocks with LD == rows.
//
// This mirrors matrix.Dense's flat-slice-plus-bounds-check discipline in
// the teacher, generalized from row-major float64 to column-major T.
type Block[T ccs.Number] struct {
	Rows, Cols, LD int
	Data           []T
}

// NewBlock allocates a zeroed rows×cols block with LD == rows.
func NewBlock[T ccs.Number](rows, cols int) (*Block[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Block[T]{Rows: rows, Cols: cols, LD: rows, Data: make([]T, rows*cols)}, nil
}

// At returns the value at (i, j).
func (b *Block[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= b.Rows || j < 0 || j >= b.Cols {
		return zero, ErrOutOfRange
	}

	return b.Data[j*b.LD+i], nil
}

// Set assigns the value at (i, j).
func (b *Block[T]) Set(i, j int, v T) error {
	if i < 0 || i >= b.Rows || j < 0 || j >= b.Cols {
		return ErrOutOfRange
	}
	b.Data[j*b.LD+i] = v

	return nil
}

// Col returns column j as a slice sharing storage with Data.
func (b *Block[T]) Col(j int) []T {
	return b.Data[j*b.LD : j*b.LD+b.Rows]
}

// Compress returns a new Block holding the leading rows×cols sub-block,
// copied into a fresh allocation with LD == rows ("compress LU1 in place
// to leading dimension l", spec §4.4).
func (b *Block[T]) Compress(rows, cols int) (*Block[T], error) {
	out, err := NewBlock[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for j := 0; j < cols; j++ {
		copy(out.Col(j), b.Data[j*b.LD:j*b.LD+rows])
	}

	return out, nil
}

// SwapLines exchanges rows r1 and r2 across all cols columns of the block
// (spec §6: "a SwapLines primitive").
func (b *Block[T]) SwapLines(r1, r2 int) {
	if r1 == r2 {
		return
	}
	for j := 0; j < b.Cols; j++ {
		base := j * b.LD
		b.Data[base+r1], b.Data[base+r2] = b.Data[base+r2], b.Data[base+r1]
	}
}
