package vmath

import (
	"github.com/viterin/vek"
)

// accelMinLen is the slice length below which the vek dispatch overhead
// outweighs its SIMD gain.
const accelMinLen = 16

// Dot calculates the dot product of a and b, accumulating strictly in index
// order. This is the reference kernel; both correlation paths rely on its
// summation order.
func Dot(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// DotUnroll4 calculates the dot product with four independent accumulators.
//
// The reassociated sum differs from Dot by at most normal floating-point
// rounding noise; callers that require the exact reference order must use
// Dot instead.
func DotUnroll4(a, b []float64) float64 {
	var s0, s1, s2, s3 float64

	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}

	return s0 + s1 + s2 + s3
}

// DotAccel calculates the dot product using the vek SIMD kernels when the
// input is long enough to benefit, falling back to DotUnroll4 otherwise.
// Like DotUnroll4 it is equivalent to Dot only within reassociation
// tolerance.
func DotAccel(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	if len(a) < accelMinLen {
		return DotUnroll4(a, b)
	}

	return vek.Dot(a, b)
}

// Sum accumulates a strictly in index order.
func Sum(a []float64) float64 {
	var ret float64
	for _, v := range a {
		ret += v
	}

	return ret
}
