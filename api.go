package taucs

import (
	"github.com/arai3racoon/taucs/ccs"
	"github.com/arai3racoon/taucs/frontal"
	"github.com/arai3racoon/taucs/kernel"
	"github.com/arai3racoon/taucs/numeric"
	"github.com/arai3racoon/taucs/solve"
	"github.com/arai3racoon/taucs/symbolic"
)

// SymbolicFactor runs elimination-tree and supercolumn analysis on a
// (spec §4.2–§4.3). columnOrder is a permutation of 0..n-1 fixing the
// elimination order the caller wants applied before analysis; nil uses
// identity order.
func SymbolicFactor[T ccs.Number](a *ccs.Matrix[T], columnOrder []int, opts ...symbolic.Option) (*symbolic.Symbolic, error) {
	return symbolic.Analyze(a, columnOrder, opts...)
}

// NumericFactor runs multifrontal numeric factorization of a against sym
// (spec §4.4–§5). opts configure the partial-pivoting threshold, the
// fork-join concurrency depth/width, and assembly tuning; see the
// numeric.With* options.
func NumericFactor[T ccs.Number](a *ccs.Matrix[T], sym *symbolic.Symbolic, opts ...numeric.Option) (*frontal.BlockedFactor[T], error) {
	return numeric.Factor(a, sym, opts...)
}

// Solve computes X such that A·X = B given a numeric factor bf (spec
// §4.5). It rejects bf outright if any of its blocks failed to factor.
func Solve[T ccs.Number](bf *frontal.BlockedFactor[T], b *kernel.Block[T]) (*kernel.Block[T], error) {
	return solve.Solve(bf, b)
}
