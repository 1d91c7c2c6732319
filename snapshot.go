package ringbuf

// Size returns the logical number of occupied slots, write cursor minus read
// cursor. The read cursor is loaded first so the difference never goes
// negative while producers advance the write cursor. Diagnostic use only.
func (b *BoundedBuffer[E]) Size() int {
	head := b.read.Load()
	return int(b.write.Load() - head)
}

// IsEmpty reports whether the buffer holds no elements. Diagnostic use only.
func (b *BoundedBuffer[E]) IsEmpty() bool {
	return b.Size() == 0
}

// Copy returns a best-effort snapshot without consuming anything, oldest
// first. Like DrainTo it stops at the first slot that is reserved but not
// yet published. It must not run concurrently with DrainTo or Clear, and it
// is not a synchronization point against producers.
func (b *BoundedBuffer[E]) Copy() []E {
	tail := b.write.Load()
	out := make([]E, 0, b.capacity)
	for pos := b.read.Load(); pos != tail; pos++ {
		s := b.slot(pos)
		if s.seq.Load() != pos+1 {
			break
		}
		out = append(out, s.val)
	}
	return out
}
