package ringbuf

import "sync/atomic"

// counters tracks per-outcome totals. Add is fire-and-forget, so these are
// the only way to observe how often insertions were dropped and why.
type counters struct {
	added       atomic.Uint64
	droppedFull atomic.Uint64
	droppedRace atomic.Uint64
	drained     atomic.Uint64
	drainGaps   atomic.Uint64
}

// BufferStats is a point-in-time snapshot of a buffer's counters. The
// fields are read individually, not as one atomic unit.
type BufferStats struct {
	// Added counts insertions that won a slot reservation.
	Added uint64
	// DroppedFull counts insertions rejected because the buffer was at
	// capacity.
	DroppedFull uint64
	// DroppedRace counts insertions abandoned after losing the reservation
	// CAS to another producer.
	DroppedRace uint64
	// Drained counts elements handed to drain consumers.
	Drained uint64
	// DrainGaps counts drains cut short by a reserved-but-unpublished slot.
	DrainGaps uint64
}

// Stats retrieves the current statistics of the buffer.
func (b *BoundedBuffer[E]) Stats() BufferStats {
	return BufferStats{
		Added:       b.stats.added.Load(),
		DroppedFull: b.stats.droppedFull.Load(),
		DroppedRace: b.stats.droppedRace.Load(),
		Drained:     b.stats.drained.Load(),
		DrainGaps:   b.stats.drainGaps.Load(),
	}
}
