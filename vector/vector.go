package vector

import (
	"math"

	"github.com/shardmath/shardmath/internal/vmath"
)

// Vector is a fixed-length sequence of float64 samples.
//
// Operations never mutate the receiver; methods that transform a vector
// return a fresh copy.
type Vector []float64

// Mean returns the arithmetic mean of the samples, accumulated in index
// order.
func (v Vector) Mean() float64 {
	if len(v) == 0 {
		return 0
	}

	return vmath.Sum(v) / float64(len(v))
}

// Magnitude returns the L2 norm of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(vmath.Dot(v, v))
}

// SubScalar returns a copy of v with s subtracted from every sample.
func (v Vector) SubScalar(s float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x - s
	}

	return out
}

// DivScalar returns a copy of v with every sample divided by s.
// Division by zero follows IEEE semantics (Inf or NaN per element); callers
// that must reject degenerate magnitudes check before dividing.
func (v Vector) DivScalar(s float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x / s
	}

	return out
}

// Dot returns the dot product of v and o, accumulated in index order.
// v and o must have the same length.
func (v Vector) Dot(o Vector) float64 {
	return vmath.Dot(v, o)
}

// Normalized returns the mean-centered copy of v scaled by the inverse of
// its centered magnitude. The result of dotting two normalized vectors is
// their Pearson correlation coefficient (before clamping).
//
// If the centered magnitude is zero the division propagates non-finite
// values; see CenteredMagnitude for detecting that case up front.
func (v Vector) Normalized() Vector {
	centered := v.SubScalar(v.Mean())
	return centered.DivScalar(centered.Magnitude())
}

// CenteredMagnitude returns the L2 norm of the mean-centered copy of v.
// A zero return identifies a degenerate (constant or empty) vector.
func (v Vector) CenteredMagnitude() float64 {
	return v.SubScalar(v.Mean()).Magnitude()
}
