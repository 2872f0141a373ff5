package vector

import (
	"errors"
	"fmt"
)

// ErrEmptyVector is returned when a batch vector has no samples.
var ErrEmptyVector = errors.New("vector must contain at least one sample")

// ErrLengthMismatch indicates a vector whose length differs from the rest of
// its batch.
type ErrLengthMismatch struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("vector %d: length mismatch: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

// Batch is an ordered collection of equal-length vectors, read-only for the
// duration of one correlation computation.
type Batch []Vector

// NewBatch validates that every vector is non-empty and shares the length of
// the first one. An empty batch is valid.
func NewBatch(vs ...Vector) (Batch, error) {
	if len(vs) == 0 {
		return Batch{}, nil
	}

	dim := len(vs[0])
	for i, v := range vs {
		if len(v) == 0 {
			return nil, fmt.Errorf("%w (index %d)", ErrEmptyVector, i)
		}
		if len(v) != dim {
			return nil, &ErrLengthMismatch{Index: i, Expected: dim, Actual: len(v)}
		}
	}

	return Batch(vs), nil
}

// Len returns the number of vectors in the batch.
func (b Batch) Len() int {
	return len(b)
}

// Dim returns the shared vector length, or 0 for an empty batch.
func (b Batch) Dim() int {
	if len(b) == 0 {
		return 0
	}

	return len(b[0])
}
