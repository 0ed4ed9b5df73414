//go:build !fastmath

package estmath

import "math"

// Rcp returns 1/x.
func Rcp(x float32) float32 {
	return 1 / x
}

// Rsqrt returns 1/sqrt(x).
func Rsqrt(x float32) float32 {
	return float32(1 / math.Sqrt(float64(x)))
}
