// Package kernel provides the generic numeric trait and the dense block
// kernels spec §6 assumes are externally available: rectangular LU with
// threshold partial pivoting, triangular solves, and the three rank-k
// updates the multifrontal driver needs to propagate contribution blocks.
//
// The source instantiates one specialized copy of these kernels per scalar
// type via a preprocessor; this package instead parameterizes a single
// generic implementation over ccs.Number and a small Trait[T] bundling
// Zero, One and the two operations (Abs, Conj) that cannot be expressed as
// ordinary Go operators across both the real and complex instantiations (spec §9:
// "model this as a generic core parametric over a numeric trait").
package kernel

import (
	"math"
	"math/cmplx"

	"github.com/arai3racoon/taucs/ccs"
)

// Trait bundles the scalar operations the dense kernels need beyond the
// built-in arithmetic operators (which already work generically for every
// type in ccs.Number): Zero, One, Abs (modulus, used for pivot selection)
// and Conj (complex conjugate; identity for the real instantiations).
type Trait[T ccs.Number] struct {
	Zero func() T
	One  func() T
	Abs  func(T) float64
	Conj func(T) T
}

// NewTrait builds the Trait for T by type-switching once at construction
// time, the same "per scalar type" instantiation point spec §9 describes,
// just resolved at a single call site instead of per operation.
func NewTrait[T ccs.Number]() Trait[T] {
	var zero T
	return Trait[T]{
		Zero: func() T { return zero },
		One:  func() T { var one T; return addOne(one) },
		Abs:  absT[T],
		Conj: conjT[T],
	}
}

// addOne returns z + 1 for whichever concrete type T resolves to; used only
// to build the One() closure without duplicating the type switch.
func addOne[T ccs.Number](z T) T {
	switch v := any(z).(type) {
	case float32:
		return any(v + 1).(T)
	case float64:
		return any(v + 1).(T)
	case complex64:
		return any(v + 1).(T)
	case complex128:
		return any(v + 1).(T)
	default:
		panic("kernel: unsupported scalar type")
	}
}

// absT returns the modulus of x as a float64, the common currency pivot
// selection (spec §4.4) compares magnitudes in regardless of scalar kind.
func absT[T ccs.Number](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return math.Abs(float64(v))
	case float64:
		return math.Abs(v)
	case complex64:
		return cmplx.Abs(complex128(v))
	case complex128:
		return cmplx.Abs(v)
	default:
		panic("kernel: unsupported scalar type")
	}
}

// conjT returns the complex conjugate of x, or x unchanged for the real
// instantiations.
func conjT[T ccs.Number](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(v).(T)
	case float64:
		return any(v).(T)
	case complex64:
		return any(complex64(cmplx.Conj(complex128(v)))).(T)
	case complex128:
		return any(cmplx.Conj(v)).(T)
	default:
		panic("kernel: unsupported scalar type")
	}
}
