package correlate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shardmath/shardmath/vector"
)

func randomBatch(t *testing.T, n, dim int, seed int64) vector.Batch {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	vs := make([]vector.Vector, n)
	for i := range vs {
		v := make(vector.Vector, dim)
		for k := range v {
			v[k] = rng.NormFloat64()*10 + float64(i)
		}
		vs[i] = v
	}

	b, err := vector.NewBatch(vs...)
	require.NoError(t, err)
	return b
}

func TestPairIndex(t *testing.T) {
	// Must enumerate the upper triangle in exactly the sequential append
	// order, bijectively.
	for n := 2; n <= 12; n++ {
		next := 0
		seen := make(map[int]bool)
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				idx := PairIndex(n, i, j)
				assert.Equal(t, next, idx, "n=%d i=%d j=%d", n, i, j)
				assert.False(t, seen[idx])
				seen[idx] = true
				next++
			}
		}
		assert.Equal(t, PairCount(n), next)
	}
}

func TestPearsonKnownValues(t *testing.T) {
	up := vector.Vector{1, 2, 3, 4}
	down := vector.Vector{4, 3, 2, 1}

	assert.InDelta(t, -1, Pearson(up, down), 1e-12)
	assert.InDelta(t, 1, Pearson(up, up), 1e-12)

	// Exact positive scalar multiple correlates at 1, negation at -1.
	scaled := vector.Vector{2.5, 5, 7.5, 10}
	assert.InDelta(t, 1, Pearson(up, scaled), 1e-12)
	neg := vector.Vector{-1, -2, -3, -4}
	assert.InDelta(t, -1, Pearson(up, neg), 1e-12)
}

func TestCoefficientsLength(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5, 10} {
		b := randomBatch(t, n, 6, int64(n))
		got, err := Coefficients(b)
		require.NoError(t, err)
		assert.Len(t, got, PairCount(n), "n=%d", n)
	}
}

func TestCoefficientsRange(t *testing.T) {
	b := randomBatch(t, 12, 32, 7)
	got, err := Coefficients(b)
	require.NoError(t, err)

	for i, r := range got {
		assert.LessOrEqual(t, r, 1.0, "index %d", i)
		assert.GreaterOrEqual(t, r, -1.0, "index %d", i)
	}
}

func TestCoefficientsRejectsMismatchedLengths(t *testing.T) {
	b := vector.Batch{{1, 2}, {1, 2, 3}}

	_, err := Coefficients(b)
	var lm *vector.ErrLengthMismatch
	assert.ErrorAs(t, err, &lm)

	_, err = CoefficientsParallel(b, 2)
	assert.ErrorAs(t, err, &lm)
}

func TestParallelMatchesSequential(t *testing.T) {
	const n = 17
	b := randomBatch(t, n, 24, 99)

	want, err := Coefficients(b)
	require.NoError(t, err)

	for _, p := range []int{1, 2, 4, n - 1, n * 10} {
		got, err := CoefficientsParallel(b, p)
		require.NoError(t, err, "workers=%d", p)
		require.Len(t, got, len(want))
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-9, "workers=%d index=%d", p, i)
		}
	}
}

func TestParallelPackedMatchesSequential(t *testing.T) {
	const n = 9
	b := randomBatch(t, n, 37, 123) // dim not a multiple of the row stride

	want, err := Coefficients(b)
	require.NoError(t, err)

	got, err := CoefficientsParallel(b, 4, WithPacked())
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "index=%d", i)
	}
}

func TestParallelWorkerClamp(t *testing.T) {
	b := randomBatch(t, 3, 8, 5)

	// Zero, negative and absurd worker counts must clamp, not crash.
	for _, p := range []int{-1, 0, 1, 2, 100} {
		got, err := CoefficientsParallel(b, p)
		require.NoError(t, err, "workers=%d", p)
		assert.Len(t, got, PairCount(3))
	}
}

func TestDegeneratePolicy(t *testing.T) {
	// v2 has zero variance, so pairs (0,2) and (1,2) are undefined while
	// (0,1) is exactly -1.
	b := vector.Batch{
		{1, 2, 3, 4},
		{4, 3, 2, 1},
		{2, 2, 2, 2},
	}

	t.Run("ErrorSequential", func(t *testing.T) {
		_, err := Coefficients(b)
		var dv *ErrDegenerateVector
		require.ErrorAs(t, err, &dv)
		assert.Equal(t, 2, dv.Index)
	})

	t.Run("ErrorParallel", func(t *testing.T) {
		_, err := CoefficientsParallel(b, 2)
		var dv *ErrDegenerateVector
		require.ErrorAs(t, err, &dv)
		assert.Equal(t, 2, dv.Index)
	})

	t.Run("PropagateSequential", func(t *testing.T) {
		got, err := Coefficients(b, WithDegeneratePolicy(DegeneratePropagate))
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.InDelta(t, -1, got[PairIndex(3, 0, 1)], 1e-12)
		assert.True(t, math.IsNaN(got[PairIndex(3, 0, 2)]))
		assert.True(t, math.IsNaN(got[PairIndex(3, 1, 2)]))
	})

	t.Run("PropagateParallel", func(t *testing.T) {
		got, err := CoefficientsParallel(b, 2, WithDegeneratePolicy(DegeneratePropagate))
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.InDelta(t, -1, got[PairIndex(3, 0, 1)], 1e-12)
		assert.True(t, math.IsNaN(got[PairIndex(3, 0, 2)]))
		assert.True(t, math.IsNaN(got[PairIndex(3, 1, 2)]))
	})
}

func TestSmallBatches(t *testing.T) {
	empty, err := Coefficients(vector.Batch{})
	require.NoError(t, err)
	assert.Empty(t, empty)

	single, err := CoefficientsParallel(vector.Batch{{1, 2, 3}}, 4)
	require.NoError(t, err)
	assert.Empty(t, single)
}
