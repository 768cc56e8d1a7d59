package workbook

import "errors"

var (
	// ErrUnknownPolynomial is returned when a name is not under "polynomials".
	ErrUnknownPolynomial = errors.New("workbook: unknown polynomial")

	// ErrUnknownPoint is returned when a name is not under "points".
	ErrUnknownPoint = errors.New("workbook: unknown point")

	// ErrEmptyPolynomial is returned when a polynomial lists no coefficients.
	ErrEmptyPolynomial = errors.New("workbook: polynomial has no coefficients")
)
