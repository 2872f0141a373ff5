package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		expected float64
	}{
		{"Simple", Vector{1, 2, 3, 4}, 2.5},
		{"Single", Vector{7}, 7},
		{"Negative", Vector{-2, 2}, 0},
		{"Empty", Vector{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.v.Mean(), 1e-12)
		})
	}
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5, Vector{3, 4}.Magnitude(), 1e-12)
	assert.InDelta(t, 0, Vector{0, 0, 0}.Magnitude(), 1e-12)
	assert.InDelta(t, math.Sqrt(3), Vector{1, 1, 1}.Magnitude(), 1e-12)
}

func TestSubScalarDoesNotMutate(t *testing.T) {
	v := Vector{1, 2, 3}
	out := v.SubScalar(2)

	assert.Equal(t, Vector{-1, 0, 1}, out)
	assert.Equal(t, Vector{1, 2, 3}, v)
}

func TestDivScalar(t *testing.T) {
	v := Vector{2, 4, 6}
	assert.Equal(t, Vector{1, 2, 3}, v.DivScalar(2))
	assert.Equal(t, Vector{2, 4, 6}, v)

	// IEEE semantics on zero divisor.
	out := Vector{1, 0, -1}.DivScalar(0)
	assert.True(t, math.IsInf(out[0], 1))
	assert.True(t, math.IsNaN(out[1]))
	assert.True(t, math.IsInf(out[2], -1))
}

func TestDot(t *testing.T) {
	assert.InDelta(t, 32, Vector{1, 2, 3}.Dot(Vector{4, 5, 6}), 1e-12)
}

func TestNormalized(t *testing.T) {
	v := Vector{1, 2, 3, 4}
	z := v.Normalized()

	// Unit magnitude, zero mean.
	assert.InDelta(t, 1, z.Magnitude(), 1e-12)
	assert.InDelta(t, 0, z.Mean(), 1e-12)

	// Self-correlation of a normalized vector is 1.
	assert.InDelta(t, 1, z.Dot(z), 1e-12)
}

func TestCenteredMagnitudeDegenerate(t *testing.T) {
	assert.Zero(t, Vector{2, 2, 2, 2}.CenteredMagnitude())
	assert.Zero(t, Vector{0, 0}.CenteredMagnitude())
	assert.Greater(t, Vector{1, 2}.CenteredMagnitude(), 0.0)
}

func TestNewBatch(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		b, err := NewBatch(Vector{1, 2}, Vector{3, 4})
		require.NoError(t, err)
		assert.Equal(t, 2, b.Len())
		assert.Equal(t, 2, b.Dim())
	})

	t.Run("Empty", func(t *testing.T) {
		b, err := NewBatch()
		require.NoError(t, err)
		assert.Equal(t, 0, b.Len())
		assert.Equal(t, 0, b.Dim())
	})

	t.Run("EmptyVector", func(t *testing.T) {
		_, err := NewBatch(Vector{})
		assert.ErrorIs(t, err, ErrEmptyVector)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := NewBatch(Vector{1, 2}, Vector{1, 2, 3})
		var lm *ErrLengthMismatch
		require.ErrorAs(t, err, &lm)
		assert.Equal(t, 1, lm.Index)
		assert.Equal(t, 2, lm.Expected)
		assert.Equal(t, 3, lm.Actual)
	})
}
