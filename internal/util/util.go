package util

import "math"

// Round rounds to 2 decimals.
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}

// Percent returns part as a percentage of total, rounded to 2 decimals.
// A zero total yields 0 rather than NaN.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round(float64(part) / float64(total) * 100)
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
