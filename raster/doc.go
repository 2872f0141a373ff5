// Package raster provides the three-channel float64 image matrix consumed
// and produced by the blur engine.
//
// Channels are stored as separate row-major contiguous planes, so iterating
// y outer, x inner walks memory linearly. Samples are float64 throughout the
// pipeline; quantization to bytes happens only at the PPM boundary.
package raster
