package ccs

// Number is the scalar constraint the whole engine is generic over (spec
// §9 design notes: "model as a generic core parametric over a numeric
// trait"). It covers all four supported kinds.
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Matrix is a square n×n matrix in 0-based compressed-column storage.
//
// Colptr has length n+1; column j's entries occupy
// Rowind[Colptr[j]:Colptr[j+1]] and Values[Colptr[j]:Colptr[j+1]], with
// Rowind holding strictly increasing row indices within each column (the
// engine does not require sorted rows across the whole matrix, only within
// a column, matching the compressed-column convention the teacher's
// matrix package uses for its own adjacency/incidence views).
type Matrix[T Number] struct {
	N      int
	Colptr []int
	Rowind []int
	Values []T
	Kind   Type
}

// New constructs a Matrix from caller-owned slices without copying.
// Ownership of colptr/rowind/values passes to the returned Matrix; callers
// must not mutate them afterward.
func New[T Number](n int, colptr, rowind []int, values []T, kind Type) (*Matrix[T], error) {
	if !kind.Valid() {
		return nil, ErrBadType
	}
	if n < 0 || len(colptr) != n+1 {
		return nil, ErrMalformed
	}
	nnz := colptr[n]
	if len(rowind) != nnz || len(values) != nnz {
		return nil, ErrMalformed
	}
	for j := 0; j < n; j++ {
		if colptr[j+1] < colptr[j] {
			return nil, ErrMalformed
		}
	}
	for _, r := range rowind {
		if r < 0 || r >= n {
			return nil, ErrMalformed
		}
	}

	return &Matrix[T]{N: n, Colptr: colptr, Rowind: rowind, Values: values, Kind: kind}, nil
}

// Col returns the row indices and values of column j as sub-slices sharing
// storage with the Matrix; the caller must not retain them past a mutation
// of the Matrix.
func (m *Matrix[T]) Col(j int) ([]int, []T) {
	lo, hi := m.Colptr[j], m.Colptr[j+1]

	return m.Rowind[lo:hi], m.Values[lo:hi]
}

// NNZ returns the number of stored nonzeros.
func (m *Matrix[T]) NNZ() int { return m.Colptr[m.N] }

// ValidateSquareNonEmptyColumns enforces the two structural preconditions
// the symbolic engine depends on (spec §4.3, §6): m == n (guaranteed by
// construction, since Matrix has a single dimension N, and not checked
// here) and at least one nonzero per column.
func (m *Matrix[T]) ValidateSquareNonEmptyColumns() error {
	for j := 0; j < m.N; j++ {
		if m.Colptr[j+1] == m.Colptr[j] {
			return ErrEmptyColumn
		}
	}

	return nil
}

// Transpose returns Aᵀ in the same compressed-column form, the private
// row-oriented copy the engine keeps per spec §3 ("it owns a private copy
// for row-oriented access").
//
// Complexity: O(n + nnz) time and memory.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	n := m.N
	colptr := make([]int, n+1)
	// Count entries per row of A == per column of Aᵀ.
	for _, r := range m.Rowind {
		colptr[r+1]++
	}
	for j := 0; j < n; j++ {
		colptr[j+1] += colptr[j]
	}
	nnz := colptr[n]
	rowind := make([]int, nnz)
	values := make([]T, nnz)

	next := make([]int, n)
	copy(next, colptr[:n])
	for j := 0; j < n; j++ {
		rs, vs := m.Col(j)
		for k, r := range rs {
			pos := next[r]
			rowind[pos] = j
			values[pos] = vs[k]
			next[r]++
		}
	}

	return &Matrix[T]{N: n, Colptr: colptr, Rowind: rowind, Values: values, Kind: m.Kind}
}
