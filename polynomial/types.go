// SPDX-License-Identifier: MIT

// Package polynomial: domain types. Operations live in polynomial.go,
// textual rendering in format.go and sentinel errors in errors.go.
package polynomial

import "github.com/katalvlaran/cispoly/complexnum"

// Polynomial is the operation set of a polynomial with complex coefficients.
// Every method is pure: receivers and arguments are never mutated.
//
// Complexity notes: n = Degree()+1, m = p.Degree()+1.
type Polynomial interface {
	// Degree returns the number of stored coefficients minus one.
	// Complexity: O(1).
	Degree() int

	// Coefficient returns the coefficient of x^i.
	// Returns ErrOutOfRange if i < 0 or i > Degree().
	// Complexity: O(1).
	Coefficient(i int) (complexnum.Complex, error)

	// Coefficients returns a copy of the coefficients, index = power.
	// Complexity: O(n).
	Coefficients() []complexnum.Complex

	// IsZero reports Degree()==0 and a sole coefficient zero within tol.
	// Complexity: O(1).
	IsZero(tol float64) bool

	// IsConstant reports Degree()==0.
	// Complexity: O(1).
	IsConstant() bool

	// Scale multiplies every coefficient by f.
	// Complexity: O(n).
	Scale(f complexnum.Complex) Polynomial

	// Negate is Scale(-1 + 0i).
	// Complexity: O(n).
	Negate() Polynomial

	// Add sums coefficientwise, padding the shorter operand with zeros.
	// Complexity: O(max(n, m)).
	Add(p Polynomial) Polynomial

	// Sub is Add(p.Negate()).
	// Complexity: O(max(n, m)).
	Sub(p Polynomial) Polynomial

	// Mul convolves the coefficient sequences and trims zero top terms.
	// Complexity: O(n·m).
	Mul(p Polynomial) Polynomial

	// Evaluate computes Σ coef(i)·x^i.
	// Complexity: O(n).
	Evaluate(x complexnum.Complex) complexnum.Complex

	// Derivative returns the formal derivative.
	// Complexity: O(n).
	Derivative() Polynomial

	// Copy returns an equal polynomial with independent storage.
	// Complexity: O(n).
	Copy() Polynomial

	// Equal compares coefficients 0..Degree() of the receiver with p.
	// Complexity: O(n).
	Equal(p Polynomial, tol float64) bool

	// String renders the polynomial in cis notation.
	// Complexity: O(n).
	String() string
}

// Vector is a Polynomial backed by a coefficient slice.
// coefs[i] is the coefficient of x^i; len(coefs) ≥ 1 always.
// The slice is private and never shared with callers.
type Vector struct {
	coefs []complexnum.Complex // owned, defensively copied storage
}

// compile-time check that *Vector satisfies Polynomial.
var _ Polynomial = (*Vector)(nil)
