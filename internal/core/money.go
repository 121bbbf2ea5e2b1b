// Package core holds the domain records shared by the generator, the
// aggregation engine and the collaborator layers.
//
// This file contains the money rounding helpers. Amounts are float64 with
// two-decimal presentation; aggregate invariants hold within floating-point
// tolerance rather than exactly.
package core

import "math"

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RoundToNearest rounds v to the nearest multiple of step. Rents, for
// example, are rounded to the nearest 50.
func RoundToNearest(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
