// Package ringbuf provides a fixed-capacity, lock-free, lossy
// multi-producer/single-consumer buffer.
//
// The buffer decouples high-frequency event recording from a maintenance
// step that drains the accumulated events under exclusive access. Producers
// never block: under contention an Add may silently drop its element rather
// than spin or retry. Elements added by the same goroutine are drained in
// insertion order; no order is guaranteed across goroutines.
//
// The caller must ensure that at most one goroutine at a time acts as the
// consumer (DrainTo, Clear, Copy). The buffer performs no locking and does
// not detect concurrent consumers; violating this is a data race.
//
// Slot publication uses per-slot sequence numbers, after the bounded MPMC
// queue by Dmitry Vyukov:
// https://www.1024cores.net/home/lock-free-algorithms/queues/bounded-mpmc-queue
package ringbuf

import "sync/atomic"

// DefaultCapacity is the buffer size used by callers that do not need to
// tune the drain frequency. Sixteen slots is enough to amortize the cost of
// a drain without letting stale events pile up.
const DefaultCapacity = 16

// Consumer receives elements removed from a buffer during a drain.
type Consumer[E any] func(e E)

// Buffer is a bounded multi-producer/single-consumer buffer that rejects new
// elements when full and may fail spuriously under producer contention.
//
// Add is safe to call from any number of goroutines, concurrently with each
// other and with a single drain. DrainTo, Clear and Copy must never run
// concurrently with one another.
type Buffer[E any] interface {
	// IsFull reports the advisory full flag. The flag is a hint that a drain
	// is due; it may be stale in either direction under concurrent adds.
	IsFull() bool

	// Add attempts to insert e. It never blocks and never reports failure:
	// the element is dropped if the buffer is full or if another producer
	// wins the reservation race.
	Add(e E)

	// DrainTo removes every currently-published element and hands each one
	// to consumer, oldest first per producing goroutine. Single consumer
	// only.
	DrainTo(consumer Consumer[E])

	// Clear drains the buffer, discarding its contents.
	Clear()

	// Capacity returns the fixed buffer capacity.
	Capacity() uint64

	// Size returns the logical number of occupied slots. Diagnostic use
	// only; it is not a synchronization point against producers.
	Size() int

	// IsEmpty reports whether Size is zero. Diagnostic use only.
	IsEmpty() bool

	// Copy returns a best-effort, non-destructive snapshot, oldest first,
	// stopping at the first not-yet-published slot. Diagnostic use only.
	Copy() []E
}

// slot is one buffer cell. seq encodes the slot state for logical position
// pos: seq == pos means empty and writable for this lap, seq == pos+1 means
// published, seq == pos+capacity means consumed and writable for the next
// lap.
type slot[E any] struct {
	seq atomic.Uint64
	val E
}
