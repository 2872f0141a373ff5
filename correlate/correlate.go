package correlate

import (
	"github.com/shardmath/shardmath/internal/partition"
	"github.com/shardmath/shardmath/internal/vmath"
	"github.com/shardmath/shardmath/vector"
)

// PairCount returns the number of unordered pairs in a batch of n vectors,
// which is the length of the flattened result.
func PairCount(n int) int {
	return n * (n - 1) / 2
}

// PairIndex returns the linear offset of pair (i, j), i < j, in the
// flattened upper triangle: row i starts at i*(n-1) - i*(i-1)/2 (the
// closed-form prefix sum of remaining-row counts).
func PairIndex(n, i, j int) int {
	start := i*(n-1) - i*(i-1)/2
	return start + (j - i - 1)
}

// Pearson returns the correlation coefficient of x and y: both vectors are
// mean-centered, scaled by their own magnitude, dotted in index order, and
// the result is clamped to [-1, 1] to guard against normalization rounding
// overshoot.
//
// A zero centered magnitude propagates NaN; batch-level entry points apply
// the configured degenerate policy before reaching this function.
func Pearson(x, y vector.Vector) float64 {
	xc := x.SubScalar(x.Mean())
	yc := y.SubScalar(y.Mean())

	zx := xc.DivScalar(xc.Magnitude())
	zy := yc.DivScalar(yc.Magnitude())

	return clamp(zx.Dot(zy))
}

// clamp bounds r to [-1, 1]. NaN fails both comparisons and passes through.
func clamp(r float64) float64 {
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}

	return r
}

// Coefficients computes the flattened upper-triangular correlation matrix
// sequentially. A batch with fewer than two vectors yields an empty result.
func Coefficients(b vector.Batch, opts ...Option) ([]float64, error) {
	o := applyOptions(opts)

	if _, err := vector.NewBatch(b...); err != nil {
		return nil, err
	}
	n := b.Len()
	if n < 2 {
		return []float64{}, nil
	}
	if err := checkDegenerate(b, o.policy); err != nil {
		return nil, err
	}

	o.logger.WithBatch(n, b.Dim()).Debug("computing correlation coefficients")

	out := make([]float64, 0, PairCount(n))
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pearson(b[i], b[j]))
		}
	}

	return out, nil
}

// CoefficientsParallel computes the same result as Coefficients across a
// bounded worker count. workers is clamped to [1, n-1]; requesting more
// workers than outer rows silently reduces the count.
//
// Every vector is normalized once, outside the parallel region. The outer
// row index is then split into contiguous shards; each worker computes all
// pairs (i, j), j > i, for the rows it owns and writes them through
// PairIndex into slots no other worker touches. The join of all workers is
// the only barrier.
func CoefficientsParallel(b vector.Batch, workers int, opts ...Option) ([]float64, error) {
	o := applyOptions(opts)

	if _, err := vector.NewBatch(b...); err != nil {
		return nil, err
	}
	n := b.Len()
	if n < 2 {
		return []float64{}, nil
	}

	// Pre-normalize once so workers only perform dot products. Degenerate
	// vectors surface here, before any fan-out, for a clean failure.
	norm := make([]vector.Vector, n)
	for i, v := range b {
		centered := v.SubScalar(v.Mean())
		mag := centered.Magnitude()
		if mag == 0 && o.policy == DegenerateError {
			return nil, &ErrDegenerateVector{Index: i}
		}
		norm[i] = centered.DivScalar(mag)
	}

	rows := n - 1
	workers = partition.Clamp(workers, rows)
	spans := partition.Spans(rows, workers)

	o.logger.WithBatch(n, b.Dim()).WithWorkers(workers).Debug("computing correlation coefficients in parallel", "packed", o.packed)

	dot := func(i, j int) float64 {
		return vmath.Dot(norm[i], norm[j])
	}
	if o.packed {
		pb := packBatch(norm, b.Dim())
		dot = func(i, j int) float64 {
			return vmath.DotAccel(pb.row(i), pb.row(j))
		}
	}

	out := make([]float64, PairCount(n))
	err := partition.Run(spans, func(s partition.Span) error {
		for i := s.Lo; i < s.Hi; i++ {
			for j := i + 1; j < n; j++ {
				out[PairIndex(n, i, j)] = clamp(dot(i, j))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func checkDegenerate(b vector.Batch, policy DegeneratePolicy) error {
	if policy != DegenerateError {
		return nil
	}
	for i, v := range b {
		if v.CenteredMagnitude() == 0 {
			return &ErrDegenerateVector{Index: i}
		}
	}

	return nil
}
