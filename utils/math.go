package utils

import "math"

// RoundHalfUp rounds to the nearest integer with halves going up, matching the
// rounding the statistics screens always used.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
