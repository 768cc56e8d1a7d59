package polynomial_test

import (
	"fmt"

	"github.com/katalvlaran/cispoly/complexnum"
	"github.com/katalvlaran/cispoly/polynomial"
)

// ExampleVector_Evaluate evaluates 2x + 1 at x = 3.
func ExampleVector_Evaluate() {
	p, err := polynomial.FromReals(1, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(p.Evaluate(complexnum.New(3, 0)))
	// Output:
	// 7.0
}

// ExampleVector_Derivative differentiates 3x² + 2x + 1.
func ExampleVector_Derivative() {
	p, _ := polynomial.FromReals(1, 2, 3)
	d := p.Derivative()

	fmt.Println(d.Degree())
	fmt.Println(d)
	// Output:
	// 1
	// 6.0 cis (0.0) x + 2.0 cis (0.0)
}

// ExampleVector_Mul multiplies (x + 1)(x − 1).
func ExampleVector_Mul() {
	a, _ := polynomial.FromReals(1, 1)
	b, _ := polynomial.FromReals(-1, 1)
	prod := a.Mul(b)

	for i := 0; i <= prod.Degree(); i++ {
		coef, _ := prod.Coefficient(i)
		fmt.Printf("x^%d: %v\n", i, coef)
	}
	// Output:
	// x^0: - 1.0
	// x^1: 0.0
	// x^2: 1.0
}
