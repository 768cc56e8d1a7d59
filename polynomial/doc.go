// Package polynomial implements immutable polynomials with complex
// coefficients on top of package complexnum.
//
// 🚀 What is a Vector?
//
//	A polynomial stored as a slice of complexnum.Complex where index i holds
//	the coefficient of x^i. Degree = len-1 and is never negative: the zero
//	polynomial is a single zero coefficient.
//
// ✨ Key features:
//   - Scale, Negate, Add, Sub (no trimming) and Mul (convolution, trimmed)
//   - Evaluate at a complex point, formal Derivative
//   - tolerance-based Equal and IsZero
//   - String in cis notation: "2.0 cis (0.0) x + 1.0 cis (0.0)"
//
// Trailing zeros:
//
//	New keeps coefficients exactly as supplied, and Add/Sub keep the longer
//	operand's length even when the top terms cancel. Only Mul trims, down to
//	the smallest degree whose top coefficient is non-zero (or degree 0).
//
// Boundaries:
//   - New on an empty slice → ErrEmptyCoefficients.
//   - Coefficient(i) outside [0, Degree()] → ErrOutOfRange.
//   - Equal is driven by the receiver's degree; a shorter argument is
//     reported as not equal rather than indexed out of range.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cispoly/polynomial"
//
//	p, _ := polynomial.FromReals(1, 2, 3) // 3x² + 2x + 1
//	d := p.Derivative()                  // 6x + 2
//	y := p.Evaluate(complexnum.New(3, 0)) // 34
//
// Concurrency: values are never mutated after construction; share freely.
package polynomial
