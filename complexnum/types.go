// SPDX-License-Identifier: MIT

// Package complexnum: domain types and the numeric policy constant.
// Operations live in complex.go, textual rendering in format.go.
package complexnum

// DefaultEpsilon is the tolerance shared by every caller that has no better
// bound of its own. Pass it to IsReal, IsZero and Equal for the default
// comparison behavior.
const DefaultEpsilon = 1e-9

// Number is the operation set of a complex value.
// Complex is the only implementation; the interface documents the surface and
// lets callers accept any value that renders and compares the same way.
type Number interface {
	// Re returns the real part.
	Re() float64

	// Im returns the imaginary part.
	Im() float64

	// Rho returns the magnitude hypot(re, im).
	Rho() float64

	// Theta returns the angle atan2(im, re) in (-π, π].
	Theta() float64

	// Norm is an alias for Rho.
	Norm() float64

	// Add returns the componentwise sum.
	Add(other Complex) Complex

	// Sub returns the componentwise difference.
	Sub(other Complex) Complex

	// Mul returns the complex product.
	Mul(other Complex) Complex

	// Pow raises the value to a real exponent using the polar form.
	Pow(x float64) Complex

	// Div returns the complex quotient (NaN/Inf on a zero divisor).
	Div(other Complex) Complex

	// Conjugate returns (re, -im).
	Conjugate() Complex

	// IsReal reports |im| ≤ tol.
	IsReal(tol float64) bool

	// IsZero reports |re| ≤ tol and |im| ≤ tol.
	IsZero(tol float64) bool

	// Equal reports that both components differ by at most tol.
	Equal(other Complex, tol float64) bool

	// String renders the rectangular form ("3.0 + 4.0i").
	String() string

	// TrigString renders the polar form ("5.0 cis (0.9272952180016122)").
	TrigString() string
}

// Complex is an immutable complex number in rectangular form.
// The zero value is 0 + 0i and is ready to use.
type Complex struct {
	re float64 // real part
	im float64 // imaginary part
}

// compile-time check that Complex satisfies Number.
var _ Number = Complex{}
