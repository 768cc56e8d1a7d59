// SPDX-License-Identifier: MIT

// Package complexnum provides an immutable complex number in rectangular form
// with polar views, arithmetic, tolerance-based comparison and the textual
// renderings consumed by the polynomial package.
//
// 🚀 What is a Complex here?
//
//	A pair (re, im) of float64 values. Every operation returns a new value;
//	nothing is ever mutated after construction, so values can be shared
//	between goroutines without synchronization.
//
// ✨ Key features:
//   - rectangular accessors Re/Im and polar views Rho/Theta (plus Norm alias)
//   - Add, Sub, Mul, Div, Conjugate and real-exponent Pow in polar form
//   - IsReal, IsZero and Equal with an explicit tolerance (DefaultEpsilon)
//   - String ("3.0 + 4.0i") and TrigString ("5.0 cis (0.9272952180016122)")
//
// Numeric policy:
//
//	Floating-point semantics propagate untouched. Division by a zero complex
//	number yields NaN/Inf components, and Pow(0) of the origin follows
//	math.Pow/math.Cos/math.Sin. No operation returns an error.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cispoly/complexnum"
//
//	z := complexnum.New(3, 4)
//	fmt.Println(z, z.Rho(), z.TrigString())
//	w := z.Mul(z.Conjugate()) // 25 + 0i
//	fmt.Println(w.IsReal(complexnum.DefaultEpsilon))
//
// Complexity: every operation is O(1).
package complexnum
