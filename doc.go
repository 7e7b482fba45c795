// Package taucs implements unsymmetric multifrontal sparse LU
// factorization with partial/threshold pivoting (spec §1–§8): symbolic
// elimination analysis, numeric multifrontal factorization, a dense solve
// driver, and a lossy adapter back to two global CCS matrices.
//
// Five packages do the real work, composed here into one surface:
//
//	ccs/      — compressed-column matrix type, generic over a numeric trait
//	symbolic/ — column elimination tree + supercolumn grouping (§4.2–§4.3)
//	numeric/  — per-supercolumn dense LU, contribution-block assembly,
//	            fork-join concurrency across the elimination tree (§4.4–§5)
//	frontal/  — the factor/contribution block types numeric and solve share
//	solve/    — forward/back substitution over a factored matrix (§4.5)
//
// A typical call sequence:
//
//	sym, err := taucs.SymbolicFactor(a, nil)
//	bf, err := taucs.NumericFactor(a, sym, numeric.WithNProc(4))
//	x, err := taucs.Solve(bf, b)
//
// BlockedToGlobal exposes the factor's L, U and the row/column
// permutations as ordinary ccs.Matrix values, for callers that need to
// inspect or reuse the factorization outside this module; it is a lossy,
// convenience adapter, not part of the core factorization path.
package taucs
