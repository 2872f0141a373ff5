package blur

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightsRadiusZero(t *testing.T) {
	w, err := Weights(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, w)
}

func TestWeightsShapeAndFalloff(t *testing.T) {
	for _, radius := range []int{1, 2, 5, 50, MaxRadius - 1} {
		w, err := Weights(radius)
		require.NoError(t, err)
		require.Len(t, w, radius+1)

		assert.InDelta(t, 1, w[0], 1e-12, "center weight, radius %d", radius)
		for k := 1; k <= radius; k++ {
			assert.Less(t, w[k], w[k-1], "radius %d k %d", radius, k)
			assert.Greater(t, w[k], 0.0)
		}
	}
}

func TestWeightsKnownValue(t *testing.T) {
	w, err := Weights(2)
	require.NoError(t, err)

	// w[k] = exp(-(k*1.33/2)^2 * 3.14159)
	x := 1.33 / 2
	assert.InDelta(t, math.Exp(-x*x*3.14159), w[1], 1e-12)
	x = 1.33
	assert.InDelta(t, math.Exp(-x*x*3.14159), w[2], 1e-12)
}

func TestWeightsDeterministic(t *testing.T) {
	a, err := Weights(17)
	require.NoError(t, err)
	b, err := Weights(17)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWeightsOutOfRange(t *testing.T) {
	for _, radius := range []int{-1, MaxRadius, MaxRadius + 5} {
		_, err := Weights(radius)
		var oor *ErrRadiusOutOfRange
		require.ErrorAs(t, err, &oor, "radius %d", radius)
		assert.Equal(t, radius, oor.Radius)
	}
}
