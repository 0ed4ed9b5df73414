//go:build fastmath

package estmath

import (
	"github.com/meko-christian/algo-approx"
)

// Rcp returns 1/x.
// algo-approx has no reciprocal estimate.
func Rcp(x float32) float32 {
	return 1 / x
}

// Rsqrt returns 1/sqrt(x) using fast approximation.
func Rsqrt(x float32) float32 {
	return float32(1 / approx.FastSqrt(float64(x)))
}
