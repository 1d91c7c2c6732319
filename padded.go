package ringbuf

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

const cacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// NewPadded creates a bounded buffer whose logical slots are spaced apart by
// a whole number of cells per cache line, so that two adjacent logical slots
// never share a line. Same contract and invariants as New; prefer it when
// producers run on distinct cores under heavy contention, at the cost of a
// larger backing array.
// Capacity must be a power of two (1<<k).
func NewPadded[E any](capacity uint64) *BoundedBuffer[E] {
	slotSize := uint64(unsafe.Sizeof(slot[E]{}))
	stride := (uint64(cacheLineSize) + slotSize - 1) / slotSize
	return newBuffer[E](capacity, stride)
}
