package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedFloat64(t *testing.T) {
	sizes := []int{1, 7, 8, 9, 100, 1024}

	for _, size := range sizes {
		buf := AllocAlignedFloat64(size)
		assert.Len(t, buf, size)
		assert.True(t, IsAligned(buf), "size %d", size)

		// Zero-initialized and writable end to end.
		for i := range buf {
			assert.Zero(t, buf[i])
			buf[i] = float64(i)
		}
		assert.Equal(t, float64(size-1), buf[size-1])
	}

	assert.Nil(t, AllocAlignedFloat64(0))
	assert.Nil(t, AllocAlignedFloat64(-1))
}

func TestIsAligned(t *testing.T) {
	assert.False(t, IsAligned(nil))
	assert.True(t, IsAligned(AllocAlignedFloat64(4)))
}
