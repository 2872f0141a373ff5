package blur

import (
	"fmt"
	"math"
)

// MaxRadius bounds the weight table size. Radii at or beyond it are rejected
// before any work is scheduled.
const MaxRadius = 1000

const (
	gaussMaxX = 1.33
	gaussPi   = 3.14159
)

// ErrRadiusOutOfRange indicates a radius outside [0, MaxRadius).
type ErrRadiusOutOfRange struct {
	Radius int
}

func (e *ErrRadiusOutOfRange) Error() string {
	return fmt.Sprintf("radius %d out of range [0, %d)", e.Radius, MaxRadius)
}

// Weights returns the Gaussian falloff table for the given radius:
// weights[k] applies to samples k steps from the center,
// weights[k] = exp(-(k*1.33/radius)^2 * pi). The table is a deterministic
// pure function of the radius; every call returns identical values.
//
// Radius 0 yields the single weight [1], making the blur an identity
// transform.
func Weights(radius int) ([]float64, error) {
	if radius < 0 || radius >= MaxRadius {
		return nil, &ErrRadiusOutOfRange{Radius: radius}
	}

	w := make([]float64, radius+1)
	if radius == 0 {
		w[0] = 1
		return w, nil
	}

	for i := 0; i <= radius; i++ {
		x := float64(i) * gaussMaxX / float64(radius)
		w[i] = math.Exp(-x * x * gaussPi)
	}

	return w, nil
}
