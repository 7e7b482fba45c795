package ccs

// Type tags the scalar kind stored in a Matrix's values, letting callers at
// the public API boundary (package taucs) pick which instantiation of the
// generic engine to run without the caller having to name the Go type
// parameter directly (spec §3: "a scalar type drawn from {real-single,
// real-double, complex-single, complex-double}").
type Type int

const (
	// RealSingle marks float32-valued matrices.
	RealSingle Type = iota
	// RealDouble marks float64-valued matrices.
	RealDouble
	// ComplexSingle marks complex64-valued matrices.
	ComplexSingle
	// ComplexDouble marks complex128-valued matrices.
	ComplexDouble
)

// Valid reports whether t is one of the four supported scalar kinds.
func (t Type) Valid() bool {
	return t >= RealSingle && t <= ComplexDouble
}

// String implements fmt.Stringer for diagnostics.
func (t Type) String() string {
	switch t {
	case RealSingle:
		return "real-single"
	case RealDouble:
		return "real-double"
	case ComplexSingle:
		return "complex-single"
	case ComplexDouble:
		return "complex-double"
	default:
		return "invalid"
	}
}
