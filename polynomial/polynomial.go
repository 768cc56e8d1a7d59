// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"

	"github.com/katalvlaran/cispoly/complexnum"
)

// minusOne is the factor applied by Negate.
var minusOne = complexnum.New(-1, 0)

// New builds a polynomial from coefs, where coefs[i] is the coefficient of x^i.
// The slice is copied; trailing zero coefficients are kept as supplied.
// Stage 1 (Validate): at least one coefficient.
// Stage 2 (Finalize): defensive copy.
// Returns ErrEmptyCoefficients for an empty slice.
// Complexity: O(n).
func New(coefs []complexnum.Complex) (*Vector, error) {
	if len(coefs) == 0 {
		return nil, ErrEmptyCoefficients
	}

	return newOwned(cloneCoefs(coefs)), nil
}

// MustNew is New that panics on error. Intended for literals in tests and
// examples where an empty slice is a programmer error.
func MustNew(coefs ...complexnum.Complex) *Vector {
	v, err := New(coefs)
	if err != nil {
		panic(fmt.Sprintf("polynomial: MustNew: %v", err))
	}

	return v
}

// FromReals builds a polynomial with real coefficients, index = power.
// Returns ErrEmptyCoefficients when called without arguments.
// Complexity: O(n).
func FromReals(reals ...float64) (*Vector, error) {
	if len(reals) == 0 {
		return nil, ErrEmptyCoefficients
	}
	coefs := make([]complexnum.Complex, len(reals))
	for i, r := range reals {
		coefs[i] = complexnum.New(r, 0)
	}

	return newOwned(coefs), nil
}

// Zero returns the zero polynomial: degree 0, single zero coefficient.
func Zero() *Vector {
	return newOwned([]complexnum.Complex{complexnum.Zero()})
}

// newOwned wraps a slice the caller has just allocated; no copy is made.
func newOwned(coefs []complexnum.Complex) *Vector {
	return &Vector{coefs: coefs}
}

// cloneCoefs returns an independent copy of src.
func cloneCoefs(src []complexnum.Complex) []complexnum.Complex {
	dst := make([]complexnum.Complex, len(src))
	copy(dst, src)

	return dst
}

// coefsOf exposes the coefficients of p for read-only use.
// *Vector fast-path avoids the defensive copy of Coefficients().
func coefsOf(p Polynomial) []complexnum.Complex {
	if v, ok := p.(*Vector); ok {
		return v.coefs
	}

	return p.Coefficients()
}

// Degree returns len(coefs)-1.
func (v *Vector) Degree() int {
	return len(v.coefs) - 1
}

// Coefficient returns the coefficient of x^i or ErrOutOfRange.
func (v *Vector) Coefficient(i int) (complexnum.Complex, error) {
	if i < 0 || i >= len(v.coefs) {
		return complexnum.Complex{}, vectorErrorf("Coefficient", i, ErrOutOfRange)
	}

	return v.coefs[i], nil
}

// Coefficients returns a copy of the coefficient slice.
func (v *Vector) Coefficients() []complexnum.Complex {
	return cloneCoefs(v.coefs)
}

// IsZero reports whether v is the zero polynomial within tol.
// A longer polynomial whose coefficients are all zero is NOT zero: only the
// degree-0 form qualifies.
func (v *Vector) IsZero(tol float64) bool {
	return v.Degree() == 0 && v.coefs[0].IsZero(tol)
}

// IsConstant reports whether v has degree 0.
func (v *Vector) IsConstant() bool {
	return v.Degree() == 0
}

// Scale multiplies every coefficient by f; the length is unchanged.
func (v *Vector) Scale(f complexnum.Complex) Polynomial {
	out := make([]complexnum.Complex, len(v.coefs))
	for i, c := range v.coefs {
		out[i] = c.Mul(f)
	}

	return newOwned(out)
}

// Negate returns v scaled by -1 + 0i.
func (v *Vector) Negate() Polynomial {
	return v.Scale(minusOne)
}

// Add returns v + p. The result has max(Degree(), p.Degree())+1 coefficients;
// nothing is trimmed even if the top terms cancel.
func (v *Vector) Add(p Polynomial) Polynomial {
	other := coefsOf(p)
	n := len(v.coefs)
	if len(other) > n {
		n = len(other)
	}

	out := make([]complexnum.Complex, n)
	for i := range out {
		var a, b complexnum.Complex // zero padding beyond either degree
		if i < len(v.coefs) {
			a = v.coefs[i]
		}
		if i < len(other) {
			b = other[i]
		}
		out[i] = a.Add(b)
	}

	return newOwned(out)
}

// Sub returns v - p, computed as v.Add(p.Negate()).
func (v *Vector) Sub(p Polynomial) Polynomial {
	return v.Add(p.Negate())
}

// Mul returns the product v·p.
//
// Algorithm:
//  1. Allocate Degree()+p.Degree()+1 zero coefficients.
//  2. out[i+j] += v[i]·p[j] for every pair.
//  3. Drop top coefficients that are zero within DefaultEpsilon, keeping at
//     least one, so the stored degree is the smallest faithful one.
func (v *Vector) Mul(p Polynomial) Polynomial {
	other := coefsOf(p)
	out := make([]complexnum.Complex, len(v.coefs)+len(other)-1)

	for i, a := range v.coefs {
		for j, b := range other {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}

	top := len(out) - 1
	for top > 0 && out[top].IsZero(complexnum.DefaultEpsilon) {
		top--
	}

	return newOwned(out[:top+1])
}

// Evaluate returns Σ coef(i)·x^i, accumulating with Complex Add/Mul/Pow.
func (v *Vector) Evaluate(x complexnum.Complex) complexnum.Complex {
	var acc complexnum.Complex
	for i, c := range v.coefs {
		acc = acc.Add(c.Mul(x.Pow(float64(i))))
	}

	return acc
}

// Derivative returns the formal derivative. A constant differentiates to the
// zero polynomial; otherwise out[i] = coef(i+1)·(i+1).
func (v *Vector) Derivative() Polynomial {
	if v.IsConstant() {
		return Zero()
	}

	out := make([]complexnum.Complex, v.Degree())
	for i := range out {
		out[i] = v.coefs[i+1].Mul(complexnum.New(float64(i+1), 0))
	}

	return newOwned(out)
}

// Copy returns an equal polynomial with its own storage.
func (v *Vector) Copy() Polynomial {
	return newOwned(cloneCoefs(v.coefs))
}

// Equal compares coef(i) with p's coef(i) for i in 0..v.Degree(), each within
// tol. The receiver's degree drives the comparison:
//   - if p has fewer coefficients than v, Equal reports false;
//   - if p has more, its extra coefficients are not inspected.
//
// Hence a.Equal(b) and b.Equal(a) can differ when degrees differ.
func (v *Vector) Equal(p Polynomial, tol float64) bool {
	other := coefsOf(p)
	if len(other) < len(v.coefs) {
		return false
	}
	for i, c := range v.coefs {
		if !c.Equal(other[i], tol) {
			return false
		}
	}

	return true
}
