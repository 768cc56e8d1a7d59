// SPDX-License-Identifier: MIT

package complexnum

import "math"

// New constructs re + im·i. Total: no validation is performed, NaN and Inf
// are stored as given.
// Complexity: O(1).
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromPolar constructs rho·(cos theta + i·sin theta).
// Complexity: O(1).
func FromPolar(rho, theta float64) Complex {
	return Complex{re: rho * math.Cos(theta), im: rho * math.Sin(theta)}
}

// Zero returns 0 + 0i.
func Zero() Complex { return Complex{} }

// One returns 1 + 0i.
func One() Complex { return Complex{re: 1} }

// Re returns the real part.
func (c Complex) Re() float64 { return c.re }

// Im returns the imaginary part.
func (c Complex) Im() float64 { return c.im }

// Rho returns the magnitude hypot(re, im).
// Complexity: O(1).
func (c Complex) Rho() float64 {
	return math.Hypot(c.re, c.im)
}

// Theta returns the angle atan2(im, re), in the range (-π, π].
// Complexity: O(1).
func (c Complex) Theta() float64 {
	return math.Atan2(c.im, c.re)
}

// Norm is an alias for Rho.
func (c Complex) Norm() float64 { return c.Rho() }

// Add returns c + other.
// Complexity: O(1).
func (c Complex) Add(other Complex) Complex {
	return Complex{re: c.re + other.re, im: c.im + other.im}
}

// Sub returns c - other.
// Complexity: O(1).
func (c Complex) Sub(other Complex) Complex {
	return Complex{re: c.re - other.re, im: c.im - other.im}
}

// Mul returns c · other:
//
//	re = re1·re2 − im1·im2
//	im = re1·im2 + im1·re2
//
// Complexity: O(1).
func (c Complex) Mul(other Complex) Complex {
	re := c.re*other.re - c.im*other.im
	im := c.re*other.im + c.im*other.re

	return Complex{re: re, im: im}
}

// Pow raises c to the real exponent x in polar form:
//
//	r = rho^x, t = theta·x, result = (r·cos t, r·sin t)
//
// The origin is not special-cased: Pow(0) of 0 + 0i is whatever
// math.Pow(0, 0)·cos(0) and ·sin(0) produce, i.e. 1 + 0i.
// Complexity: O(1).
func (c Complex) Pow(x float64) Complex {
	r := math.Pow(c.Rho(), x) // magnitude of the result
	t := c.Theta() * x        // angle of the result

	return Complex{re: r * math.Cos(t), im: r * math.Sin(t)}
}

// Div returns c / other. The denominator re2² + im2² is not guarded: a zero
// divisor yields NaN or ±Inf components per IEEE-754.
// Complexity: O(1).
func (c Complex) Div(other Complex) Complex {
	denom := other.re*other.re + other.im*other.im
	re := (c.re*other.re + c.im*other.im) / denom
	im := (c.im*other.re - c.re*other.im) / denom

	return Complex{re: re, im: im}
}

// Conjugate returns re − im·i.
func (c Complex) Conjugate() Complex {
	return Complex{re: c.re, im: -c.im}
}

// IsReal reports whether |im| ≤ tol.
func (c Complex) IsReal(tol float64) bool {
	return math.Abs(c.im) <= tol
}

// IsZero reports whether |re| ≤ tol and |im| ≤ tol.
func (c Complex) IsZero(tol float64) bool {
	return math.Abs(c.re) <= tol && math.Abs(c.im) <= tol
}

// Equal reports whether both components of c and other differ by at most tol.
func (c Complex) Equal(other Complex, tol float64) bool {
	return math.Abs(c.re-other.re) <= tol && math.Abs(c.im-other.im) <= tol
}
