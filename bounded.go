package ringbuf

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// BoundedBuffer is the lock-free realization of Buffer over a fixed-size
// slot array and two monotonically increasing cursors. The physical slot
// index is the counter masked by capacity-1; the cursors themselves never
// wrap.
type BoundedBuffer[E any] struct {
	// Padding keeps the cursors on their own cache lines.
	_        cpu.CacheLinePad
	mask     uint64
	capacity uint64
	stride   uint64
	slots    []slot[E]
	_        cpu.CacheLinePad
	write    atomic.Uint64 // logical "tail", reserved by producers via CAS
	_        cpu.CacheLinePad
	read     atomic.Uint64 // logical "head", advanced only by the single consumer
	_        cpu.CacheLinePad
	full     atomic.Bool // advisory: a drain is due
	_        cpu.CacheLinePad
	stats counters
}

var _ Buffer[int] = (*BoundedBuffer[int])(nil)

// New creates a bounded buffer with one slot per cell.
// Capacity must be a power of two (1<<k).
func New[E any](capacity uint64) *BoundedBuffer[E] {
	return newBuffer[E](capacity, 1)
}

func newBuffer[E any](capacity, stride uint64) *BoundedBuffer[E] {
	if capacity == 0 || (capacity&(capacity-1)) != 0 {
		panic("capacity must be power of 2 and > 0")
	}

	b := &BoundedBuffer[E]{
		mask:     capacity - 1,
		capacity: capacity,
		stride:   stride,
		slots:    make([]slot[E], capacity*stride),
	}
	for i := uint64(0); i < capacity; i++ {
		// initial sequence value per slot
		b.slot(i).seq.Store(i)
	}

	return b
}

// slot maps a logical position to its physical cell.
func (b *BoundedBuffer[E]) slot(pos uint64) *slot[E] {
	return &b.slots[(pos&b.mask)*b.stride]
}

// IsFull reports the advisory full flag.
func (b *BoundedBuffer[E]) IsFull() bool {
	return b.full.Load()
}

// Add attempts to insert e. It makes a single reservation attempt: if the
// buffer is at capacity, or another producer wins the CAS on the write
// cursor, the element is dropped. Dropping is deliberately cheaper than
// spinning; the recorded data is advisory.
// May be called concurrently from many goroutines (producers).
func (b *BoundedBuffer[E]) Add(e E) {
	head := b.read.Load()
	tail := b.write.Load()
	size := tail - head

	if size >= b.capacity {
		b.stats.droppedFull.Add(1)
		return
	}
	if !b.write.CompareAndSwap(tail, tail+1) {
		// lost the reservation race, not retried
		b.stats.droppedRace.Add(1)
		return
	}

	// we own physical slot tail&mask until the consumer frees it
	s := b.slot(tail)
	s.val = e
	// publish the value: seq = pos+1
	s.seq.Store(tail + 1)
	b.stats.added.Add(1)

	if size == b.capacity-1 {
		b.full.Store(true)
	}
}

// DrainTo removes every published element and hands each one to consumer,
// oldest first per producing goroutine. A slot whose producer has reserved
// but not yet published stops the drain; the elements behind it are picked
// up by a later call. A slot is cleared before its element is handed over,
// so an element whose consumer panics is consumed and never retried; the
// read cursor is still published on the way out, leaving the remainder
// drainable.
// IMPORTANT: must be called from a single consumer goroutine.
func (b *BoundedBuffer[E]) DrainTo(consumer Consumer[E]) {
	head := b.read.Load()
	tail := b.write.Load()
	defer func() {
		b.read.Store(head)
		b.full.Store(false)
	}()

	for head != tail {
		s := b.slot(head)
		if s.seq.Load() != head+1 {
			// reserved but not yet published
			b.stats.drainGaps.Add(1)
			break
		}

		e := s.val
		var zero E
		s.val = zero
		// free the slot for the next lap:
		// next time this physical slot is used at pos+capacity
		s.seq.Store(head + b.capacity)
		head++
		b.stats.drained.Add(1)

		consumer(e)
	}
}

// Clear drains the buffer, discarding its contents.
func (b *BoundedBuffer[E]) Clear() {
	b.DrainTo(func(E) {})
}

// Capacity returns the fixed buffer capacity.
func (b *BoundedBuffer[E]) Capacity() uint64 {
	return b.capacity
}
