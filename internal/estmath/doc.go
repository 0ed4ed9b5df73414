// Package estmath provides the estimated reciprocal and inverse square root
// used by the blending kernels.
//
// The default build uses exact float32 arithmetic. Building with the
// fastmath tag switches the inverse square root to the algo-approx
// approximation, which keeps results within about 1e-4 relative error.
// Callers must not depend on the last bits of either variant; compare
// results with a 1e-3 relative tolerance.
package estmath
