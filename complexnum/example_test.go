package complexnum_test

import (
	"fmt"

	"github.com/katalvlaran/cispoly/complexnum"
)

// ExampleComplex shows the rectangular and polar views of 3 + 4i.
func ExampleComplex() {
	z := complexnum.New(3, 4)

	fmt.Println(z)
	fmt.Println(z.Rho())
	fmt.Println(z.TrigString())
	fmt.Println(z.Conjugate())
	// Output:
	// 3.0 + 4.0i
	// 5
	// 5.0 cis (0.9272952180016122)
	// 3.0 - 4.0i
}

// ExampleComplex_Mul multiplies a value by its conjugate; the result is real.
func ExampleComplex_Mul() {
	z := complexnum.New(3, 4)
	p := z.Mul(z.Conjugate())

	fmt.Println(p, p.IsReal(complexnum.DefaultEpsilon))
	// Output:
	// 25.0 true
}

// ExampleComplex_Pow squares the imaginary unit.
func ExampleComplex_Pow() {
	i := complexnum.New(0, 1)

	fmt.Println(i.Pow(2))
	// Output:
	// - 1.0
}
