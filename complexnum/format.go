// SPDX-License-Identifier: MIT
// Package: complexnum
//
// Purpose:
//   - Render Complex values as text for existing consumers that compare
//     strings literally ("3.0 + 4.0i", "- 2.0i", "5.0 cis (0.0)").
//
// Rules for String:
//  1. zero within DefaultEpsilon            → "0.0"
//  2. |im| < DefaultEpsilon                  → real term only
//  3. |re| < DefaultEpsilon                  → imaginary term only, "i" suffix
//  4. otherwise                              → "X ± Yi" with a leading "- " when re < 0
//
// A negative term is written as "- " followed by its magnitude (note the space).
//
// Number literals:
//   - shortest round-trip digits with at least one fractional digit ("3.0");
//   - scientific "1.5E-5" / "1.0E10" outside [1e-3, 1e7);
//   - "NaN", "Infinity", "-Infinity" for non-finite values.

package complexnum

import (
	"math"
	"strconv"
	"strings"
)

// Bounds of the plain decimal notation; outside them literals use E-notation.
const (
	plainLow  = 1e-3
	plainHigh = 1e7
)

// String renders c in rectangular form following the rules above.
// Complexity: O(1).
func (c Complex) String() string {
	// Rule 1: the origin.
	if c.IsZero(DefaultEpsilon) {
		return "0.0"
	}

	reNegligible := math.Abs(c.re) < DefaultEpsilon
	imNegligible := math.Abs(c.im) < DefaultEpsilon

	switch {
	case imNegligible: // rule 2
		return signedTerm(c.re, "")
	case reNegligible: // rule 3
		return signedTerm(c.im, "i")
	}

	// Rule 4: both parts significant, four sign combinations.
	var sb strings.Builder
	sb.WriteString(signedTerm(c.re, ""))
	if c.im < 0 {
		sb.WriteString(" - ")
	} else {
		sb.WriteString(" + ")
	}
	sb.WriteString(FormatReal(math.Abs(c.im)))
	sb.WriteString("i")

	return sb.String()
}

// TrigString renders c as "<rho> cis (<theta>)".
// Complexity: O(1).
func (c Complex) TrigString() string {
	return FormatReal(c.Rho()) + " cis (" + FormatReal(c.Theta()) + ")"
}

// signedTerm writes v with the "- " prefix convention and the given suffix.
func signedTerm(v float64, suffix string) string {
	if v < 0 {
		return "- " + FormatReal(-v) + suffix
	}

	return FormatReal(v) + suffix
}

// FormatReal renders a float64 as a decimal literal with at least one
// fractional digit, switching to "<mantissa>E<exp>" outside [1e-3, 1e7).
//
//	FormatReal(3)       == "3.0"
//	FormatReal(-0.25)   == "-0.25"
//	FormatReal(1e10)    == "1.0E10"
//	FormatReal(1.5e-5)  == "1.5E-5"
//
// Complexity: O(digits).
func FormatReal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= plainLow && abs < plainHigh {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// Scientific form: strconv gives "1.5E-05", rewrite as "1.5E-5".
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		// strconv always emits a signed decimal exponent; keep its text verbatim otherwise.
		return mantissa + "E" + exp
	}

	return mantissa + "E" + strconv.Itoa(e)
}
