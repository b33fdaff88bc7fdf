// SPDX-License-Identifier: EPL-2.0

package utils

// LinearInterpolate returns the point at fraction x between y0 and y1
// (0 <= x <= 1).
func LinearInterpolate(y0, y1, x float64) float64 {
	return (1-x)*y0 + x*y1
}
