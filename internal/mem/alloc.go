// Package mem provides memory allocation utilities for the packed
// correlation buffers.
package mem

import (
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment so an aligned offset always exists within
	// the buffer.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedFloat64 allocates a float64 slice of the given size with
// 64-byte alignment. If the aligned view cannot be produced it falls back to
// an ordinary slice, so callers always receive usable zeroed storage.
func AllocAlignedFloat64(size int) []float64 {
	if size <= 0 {
		return nil
	}

	byteSize := size * 8
	byteSlice := AllocAligned(byteSize)
	if len(byteSlice) != byteSize {
		// Unaligned fallback, correctness is unaffected.
		return make([]float64, size)
	}

	// Safe because AllocAligned guarantees 64-byte alignment, which is also
	// 8-byte aligned (required for float64).
	ptr := unsafe.Pointer(&byteSlice[0])       //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float64)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether the first element of f sits on an Alignment
// boundary. Exposed for tests and for callers that want to verify the fast
// path is active.
func IsAligned(f []float64) bool {
	if len(f) == 0 {
		return false
	}
	addr := uintptr(unsafe.Pointer(&f[0])) //nolint:gosec // address inspection only
	return addr%Alignment == 0
}
