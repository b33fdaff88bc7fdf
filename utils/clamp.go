// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// ClampInt16 saturates v into the int16 range.
func ClampInt16(v int) int16 {
	return int16(Clamp(v, math.MinInt16, math.MaxInt16))
}

// FloatToInt16 truncates x toward zero and saturates it into the int16 range.
func FloatToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}
	if x >= math.MaxInt16 {
		return math.MaxInt16
	}
	if x <= math.MinInt16 {
		return math.MinInt16
	}

	return int16(x)
}
