// SPDX-License-Identifier: MIT

package polynomial

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/cispoly/complexnum"
)

// String renders v from the highest power down to x^0. Each coefficient that
// is non-zero within DefaultEpsilon contributes its TrigString, then " x" for
// powers ≥ 1 and "^k" for powers ≥ 2; terms are joined with " + ".
// A polynomial with no non-zero coefficient renders as "0.0".
//
//	3x² + 1 → "3.0 cis (0.0) x^2 + 1.0 cis (0.0)"
func (v *Vector) String() string {
	terms := make([]string, 0, len(v.coefs))
	for i := len(v.coefs) - 1; i >= 0; i-- {
		c := v.coefs[i]
		if c.IsZero(complexnum.DefaultEpsilon) {
			continue
		}
		terms = append(terms, term(c, i))
	}
	if len(terms) == 0 {
		return "0.0"
	}

	return strings.Join(terms, " + ")
}

// term renders one "<cis> x^k" term.
func term(c complexnum.Complex, power int) string {
	s := c.TrigString()
	switch {
	case power == 1:
		s += " x"
	case power > 1:
		s += " x^" + strconv.Itoa(power)
	}

	return s
}
