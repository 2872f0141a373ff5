package blur

import (
	"github.com/shardmath/shardmath/internal/partition"
	"github.com/shardmath/shardmath/raster"
)

// Blur returns a blurred copy of img using the sequential reference path.
// The input matrix is never mutated. Radius 0 returns an identical copy.
func Blur(img *raster.Matrix, radius int, opts ...Option) (*raster.Matrix, error) {
	o := applyOptions(opts)

	weights, err := Weights(radius)
	if err != nil {
		return nil, err
	}

	o.logger.WithImage(img.Width(), img.Height()).WithRadius(radius).Debug("blurring image")

	// img is only ever read; scratch holds the intermediate and dst the
	// final image, so the caller's matrix is never mutated.
	scratch := raster.New(img.Width(), img.Height())
	dst := raster.New(img.Width(), img.Height())

	h := img.Height()
	passHorizontal(img, scratch, weights, 0, h)
	passVertical(scratch, dst, weights, 0, h)

	return dst, nil
}

// BlurParallel computes the same result as Blur with rows sharded across a
// bounded worker count, clamped to [1, H]. A hard barrier separates the two
// passes: pass 2 reads scratch rows written by arbitrary pass-1 workers, so
// no pass-2 worker starts until every pass-1 worker has joined. Within a
// pass each worker writes only the rows it owns.
func BlurParallel(img *raster.Matrix, radius, workers int, opts ...Option) (*raster.Matrix, error) {
	o := applyOptions(opts)

	// Weight table computed once, before partitioning, and shared read-only
	// by every worker.
	weights, err := Weights(radius)
	if err != nil {
		return nil, err
	}

	h := img.Height()
	workers = partition.Clamp(workers, h)
	spans := partition.Spans(h, workers)

	o.logger.WithImage(img.Width(), h).WithRadius(radius).WithWorkers(workers).Debug("blurring image in parallel")

	scratch := raster.New(img.Width(), h)
	dst := raster.New(img.Width(), h)

	// Pass 1: horizontal into scratch. The Wait inside Run is the barrier.
	err = partition.Run(spans, func(s partition.Span) error {
		passHorizontal(img, scratch, weights, s.Lo, s.Hi)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Pass 2: vertical from scratch into dst. Row shards need not match
	// pass 1; all scratch rows exist by now.
	err = partition.Run(spans, func(s partition.Span) error {
		passVertical(scratch, dst, weights, s.Lo, s.Hi)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dst, nil
}

// passHorizontal averages rows [y0, y1) of src along x into dst. Taps
// outside the image are omitted from numerator and denominator alike.
// Traversal is y outer, x inner: rows are contiguous in memory.
func passHorizontal(src, dst *raster.Matrix, weights []float64, y0, y1 int) {
	w := src.Width()
	radius := len(weights) - 1

	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			r, g, b := src.At(x, y)
			r *= weights[0]
			g *= weights[0]
			b *= weights[0]
			n := weights[0]

			for k := 1; k <= radius; k++ {
				wc := weights[k]

				if x2 := x - k; x2 >= 0 {
					cr, cg, cb := src.At(x2, y)
					r += wc * cr
					g += wc * cg
					b += wc * cb
					n += wc
				}
				if x2 := x + k; x2 < w {
					cr, cg, cb := src.At(x2, y)
					r += wc * cr
					g += wc * cg
					b += wc * cb
					n += wc
				}
			}

			dst.Set(x, y, r/n, g/n, b/n)
		}
	}
}

// passVertical averages rows [y0, y1) of src along y into dst, with the
// same boundary-omission rule as passHorizontal.
func passVertical(src, dst *raster.Matrix, weights []float64, y0, y1 int) {
	w := src.Width()
	h := src.Height()
	radius := len(weights) - 1

	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			r, g, b := src.At(x, y)
			r *= weights[0]
			g *= weights[0]
			b *= weights[0]
			n := weights[0]

			for k := 1; k <= radius; k++ {
				wc := weights[k]

				if y2 := y - k; y2 >= 0 {
					cr, cg, cb := src.At(x, y2)
					r += wc * cr
					g += wc * cg
					b += wc * cb
					n += wc
				}
				if y2 := y + k; y2 < h {
					cr, cg, cb := src.At(x, y2)
					r += wc * cr
					g += wc * cg
					b += wc * cb
					n += wc
				}
			}

			dst.Set(x, y, r/n, g/n, b/n)
		}
	}
}
