// Package workbook stores named polynomials and evaluation points in a YAML
// document so that the cispoly command can operate on them by name.
//
// Document shape:
//
//	polynomials:
//	  p: [{re: 1}, {re: 2}]          # 2x + 1
//	  q: [{re: 0, im: 1}, {re: 1}]   # x + i
//	points:
//	  x: {re: 3}
//
// Each list is ordered by power: element i is the coefficient of x^i.
// Omitted components default to 0.
package workbook
