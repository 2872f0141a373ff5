// Package vmath provides float64 vector kernels for the correlation engine.
// This is an internal package - external users should use the vector package.
//
// Three dot-product kernels are exposed:
//
//   - Dot: strict left-to-right accumulation, the sequential reference order
//   - DotUnroll4: four independent accumulators for instruction-level
//     parallelism, equivalent within reassociation tolerance
//   - DotAccel: vek-backed SIMD path with the unrolled kernel as fallback
package vmath
