// SPDX-License-Identifier: MIT
// Package polynomial: sentinel error set.
// Every message is prefixed with "polynomial: ..."; callers match with
// errors.Is. Context is added with fmt.Errorf("...: %w", ErrX) at the
// call site, never by defining new sentinels.

package polynomial

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCoefficients is returned by New when no coefficient is supplied.
	// A polynomial always has at least one coefficient (degree ≥ 0).
	ErrEmptyCoefficients = errors.New("polynomial: coefficient sequence must be non-empty")

	// ErrOutOfRange indicates a coefficient index outside [0, Degree()].
	// Coefficient MUST return this, not panic.
	ErrOutOfRange = errors.New("polynomial: coefficient index out of range")
)

// vectorErrorf wraps an underlying error with Vector method context.
func vectorErrorf(method string, index int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, index, err)
}
