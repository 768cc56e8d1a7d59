package complexnum_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cispoly/complexnum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eps is the default tolerance, shortened for readability.
const eps = complexnum.DefaultEpsilon

// randomComplex draws n values with components in [-100, 100) from a fixed seed.
func randomComplex(n int) []complexnum.Complex {
	rng := rand.New(rand.NewSource(42))
	out := make([]complexnum.Complex, n)
	for i := range out {
		out[i] = complexnum.New(rng.Float64()*200-100, rng.Float64()*200-100)
	}

	return out
}

// TestComplex_Accessors checks Re/Im and the polar views of 3 + 4i.
func TestComplex_Accessors(t *testing.T) {
	z := complexnum.New(3, 4)

	assert.Equal(t, 3.0, z.Re())
	assert.Equal(t, 4.0, z.Im())
	assert.Equal(t, 5.0, z.Rho(), "hypot(3,4)")
	assert.Equal(t, 5.0, z.Norm(), "Norm aliases Rho")
	assert.InDelta(t, 0.9273, z.Theta(), 1e-4, "atan2(4,3)")
	assert.Equal(t, math.Atan2(4, 3), z.Theta())
}

// TestComplex_ThetaRange verifies the (-π, π] convention on the negative real axis.
func TestComplex_ThetaRange(t *testing.T) {
	assert.Equal(t, math.Pi, complexnum.New(-1, 0).Theta())
	assert.Equal(t, 0.0, complexnum.New(2, 0).Theta())
	assert.Equal(t, math.Pi/2, complexnum.New(0, 5).Theta())
	assert.Equal(t, -math.Pi/2, complexnum.New(0, -5).Theta())
}

// TestComplex_ZeroValue ensures the zero value is the origin.
func TestComplex_ZeroValue(t *testing.T) {
	var z complexnum.Complex
	assert.True(t, z.IsZero(eps))
	assert.Equal(t, complexnum.Zero(), z)
	assert.Equal(t, complexnum.New(1, 0), complexnum.One())
}

// TestComplex_Arithmetic checks the closed-form results of each operator.
func TestComplex_Arithmetic(t *testing.T) {
	a := complexnum.New(1, 2)
	b := complexnum.New(3, -4)

	assert.Equal(t, complexnum.New(4, -2), a.Add(b), "Add")
	assert.Equal(t, complexnum.New(-2, 6), a.Sub(b), "Sub")
	// (1+2i)(3-4i) = 3 - 4i + 6i - 8i² = 11 + 2i
	assert.Equal(t, complexnum.New(11, 2), a.Mul(b), "Mul")
	// (1+2i)/(3-4i) = (1+2i)(3+4i)/25 = (-5 + 10i)/25
	assert.True(t, a.Div(b).Equal(complexnum.New(-0.2, 0.4), eps), "Div")
	assert.Equal(t, complexnum.New(1, -2), a.Conjugate(), "Conjugate")

	// operands stay untouched
	assert.Equal(t, complexnum.New(1, 2), a)
	assert.Equal(t, complexnum.New(3, -4), b)
}

// TestComplex_Pow covers integer, fractional and degenerate exponents.
func TestComplex_Pow(t *testing.T) {
	i := complexnum.New(0, 1)
	assert.True(t, i.Pow(2).Equal(complexnum.New(-1, 0), eps), "i² = -1")
	assert.True(t, i.Pow(4).Equal(complexnum.One(), eps), "i⁴ = 1")
	assert.True(t, complexnum.New(4, 0).Pow(0.5).Equal(complexnum.New(2, 0), eps), "√4 = 2")
	assert.True(t, complexnum.New(3, 0).Pow(3).Equal(complexnum.New(27, 0), eps), "3³ = 27")

	// 0^0 follows math.Pow(0,0)=1 with theta=atan2(0,0)=0.
	assert.Equal(t, complexnum.One(), complexnum.Zero().Pow(0))
	// 0^x for x>0 is the origin.
	assert.True(t, complexnum.Zero().Pow(3).IsZero(eps))
}

// TestComplex_DivByZero documents that a zero divisor propagates NaN.
func TestComplex_DivByZero(t *testing.T) {
	q := complexnum.New(1, 1).Div(complexnum.Zero())
	assert.True(t, math.IsNaN(q.Re()), "0/0 real part")
	assert.True(t, math.IsNaN(q.Im()), "0/0 imaginary part")
}

// TestComplex_FromPolar round-trips through Rho/Theta.
func TestComplex_FromPolar(t *testing.T) {
	z := complexnum.FromPolar(5, math.Atan2(4, 3))
	assert.True(t, z.Equal(complexnum.New(3, 4), eps))

	for _, w := range randomComplex(64) {
		back := complexnum.FromPolar(w.Rho(), w.Theta())
		assert.True(t, back.Equal(w, 1e-9), "polar round-trip of %v", w)
	}
}

// TestComplex_Predicates checks IsReal/IsZero/Equal boundaries (inclusive).
func TestComplex_Predicates(t *testing.T) {
	assert.True(t, complexnum.New(7, 0).IsReal(eps))
	assert.True(t, complexnum.New(7, 0.5).IsReal(0.5), "|im| == tol is real")
	assert.False(t, complexnum.New(7, 0.5).IsReal(0.4))

	assert.True(t, complexnum.New(0.1, -0.1).IsZero(0.1), "boundary inclusive")
	assert.False(t, complexnum.New(0.1, -0.2).IsZero(0.1))
	assert.False(t, complexnum.New(1e-3, 0).IsZero(eps))

	a := complexnum.New(1, 1)
	assert.True(t, a.Equal(complexnum.New(1.25, 0.75), 0.25))
	assert.False(t, a.Equal(complexnum.New(1.25, 0.75), 0.2))
	assert.True(t, a.Equal(a, 0), "exact equality with zero tolerance")
}

// TestComplex_AddSubInverse checks a + b - b == a for random operands.
func TestComplex_AddSubInverse(t *testing.T) {
	vals := randomComplex(100)
	for k := 0; k+1 < len(vals); k += 2 {
		a, b := vals[k], vals[k+1]
		require.True(t, a.Add(b).Sub(b).Equal(a, eps), "a=%v b=%v", a, b)
	}
}

// TestComplex_MulDivInverse checks (a·b)/b == a for random non-zero b.
func TestComplex_MulDivInverse(t *testing.T) {
	vals := randomComplex(100)
	for k := 0; k+1 < len(vals); k += 2 {
		a, b := vals[k], vals[k+1]
		if b.IsZero(eps) {
			continue
		}
		require.True(t, a.Mul(b).Div(b).Equal(a, eps), "a=%v b=%v", a, b)
	}
}

// TestComplex_MulConjugate checks a·conj(a) = rho² + 0i.
func TestComplex_MulConjugate(t *testing.T) {
	for _, a := range randomComplex(50) {
		p := a.Mul(a.Conjugate())
		rho := a.Rho()
		require.True(t, p.IsReal(eps), "imaginary part of %v", p)
		require.InDelta(t, rho*rho, p.Re(), 1e-9*rho*rho, "real part equals rho² for %v", a)
	}
}
