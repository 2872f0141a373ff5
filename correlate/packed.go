package correlate

import (
	"github.com/shardmath/shardmath/internal/mem"
	"github.com/shardmath/shardmath/vector"
)

// packedBatch holds all normalized vectors in one contiguous aligned buffer.
// Rows start on 64-byte boundaries (stride rounded up to 8 float64s), which
// keeps the accelerated dot kernel on its fast path; the padding tail of
// each row stays zero and is never read.
type packedBatch struct {
	data   []float64
	dim    int
	stride int
}

func packBatch(norm []vector.Vector, dim int) *packedBatch {
	stride := (dim + 7) &^ 7
	data := mem.AllocAlignedFloat64(len(norm) * stride)

	for i, v := range norm {
		copy(data[i*stride:i*stride+dim], v)
	}

	return &packedBatch{data: data, dim: dim, stride: stride}
}

// row returns the i-th normalized vector, excluding alignment padding.
func (p *packedBatch) row(i int) []float64 {
	lo := i * p.stride
	return p.data[lo : lo+p.dim]
}
