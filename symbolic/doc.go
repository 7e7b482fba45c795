// Package symbolic performs the symbolic elimination analysis that
// precedes numeric multifrontal factorization (spec §3, §4.3): it builds a
// column elimination tree bounding L/U fill, detects and relaxes
// supercolumns along one-child chains, and finalizes everything into a
// Symbolic record the numeric package walks in postorder.
//
// The tree is built from the symmetrized pattern of A ∪ Aᵀ via the classic
// union-find elimination-tree construction (Liu 1986), restricted to
// strictly-upper neighbors; see DESIGN.md for why the literal row-merge
// description in spec §4.3 is narrowed this way. dsu provides the
// union-find and rowarena the superrow bookkeeping used to derive
// per-column l_size/u_size upper bounds along the way.
package symbolic
