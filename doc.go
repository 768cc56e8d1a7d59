// Package cispoly is a small numeric toolkit for complex numbers and
// polynomials with complex coefficients.
//
// 🚀 What is in the box?
//
//	complexnum/ — immutable rectangular complex value with polar views,
//	              arithmetic, tolerance comparisons and "cis" rendering
//	polynomial/ — immutable coefficient-vector polynomials: Add, Sub, Mul,
//	              Scale, Evaluate, Derivative, Equal, String
//	workbook/   — YAML file of named polynomials and points
//	cmd/cispoly — command-line calculator over a workbook
//
// ✨ Why?
//
//   - Pure values – every operation returns a new instance, safe to share
//   - Explicit tolerances – one DefaultEpsilon instead of hidden overloads
//   - Stable text – rendering matches existing string-based consumers
//
// Quick example:
//
//	p, _ := polynomial.FromReals(1, 2)            // 2x + 1
//	fmt.Println(p.Evaluate(complexnum.New(3, 0))) // 7.0
//	fmt.Println(p)                                // 2.0 cis (0.0) x + 1.0 cis (0.0)
//
//	go get github.com/katalvlaran/cispoly
package cispoly
