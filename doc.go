// Package shardmath provides deterministic parallel implementations of two
// numeric workloads: the full pairwise Pearson correlation matrix over a
// batch of equal-length vectors, and a separable two-pass Gaussian blur over
// a three-channel raster image.
//
// Every parallel path reproduces its sequential counterpart within
// floating-point tolerance for any input and any worker count. This holds
// because partitioning is static and deterministic: an index range is split
// into contiguous shards up front, each worker writes only to output slots
// it exclusively owns, and the caller joins all workers before reading the
// combined result. No locks or atomics appear anywhere on the data path.
//
// # Quick Start
//
// Correlation:
//
//	batch, _ := dataset.Read("samples.txt")
//	coeffs, _ := correlate.CoefficientsParallel(batch, 8)
//
// Blur:
//
//	img, _ := ppm.Read("in.ppm")
//	out, _ := blur.BlurParallel(img, 15, 8)
//	_ = ppm.Write("out.ppm", out)
//
// # Packages
//
//   - correlate: sequential and parallel Pearson correlation
//   - blur: sequential and parallel separable Gaussian blur
//   - vector: numeric vector and batch leaf types
//   - raster: three-channel float64 image matrix
//   - dataset: textual vector-batch reader/writer
//   - ppm: binary P6 image reader/writer
//
// The root package carries the shared structured logger; engines accept it
// via functional options and default to a no-op logger.
package shardmath
