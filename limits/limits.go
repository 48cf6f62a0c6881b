// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package limits defines the numeric tolerance shared by every capacity
// check of the exchange engine.
package limits

import "math"

const (
	// Eps is the absolute tolerance of quantity comparisons.
	Eps = 1e-6

	// MaxQty represents an unconstrained capacity.
	MaxQty = math.MaxFloat64

	// ulpSlack is how many units in the last place of the operand magnitude
	// are added on top of Eps.
	ulpSlack = 4
)

// Tolerance returns the admissible rounding error of a value computed from
// operands of magnitude scale.
func Tolerance(scale float64) float64 {
	return Eps + ulpSlack*ulp(scale)
}

// DoubleNeg reports whether d is negative beyond Tolerance(scale).
func DoubleNeg(d, scale float64) bool {
	return d < -Tolerance(scale)
}

// DoubleEq reports whether a and b are equal within tolerance.
func DoubleEq(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance(math.Max(math.Abs(a), math.Abs(b)))
}

func ulp(x float64) float64 {
	x = math.Abs(x)
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	return x - math.Nextafter(x, 0)
}
