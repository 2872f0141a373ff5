package correlate

import (
	"fmt"
)

// ErrDegenerateVector indicates a vector whose mean-centered magnitude is
// zero (constant or all-zero input). Pearson correlation is undefined for
// such a vector; under the default DegenerateError policy the computation
// is rejected before any worker starts.
type ErrDegenerateVector struct {
	Index int
}

func (e *ErrDegenerateVector) Error() string {
	return fmt.Sprintf("vector %d has zero magnitude after centering; correlation is undefined", e.Index)
}
