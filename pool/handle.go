package pool

// Handle is a unique owning reference to one occupied slot, obtained from
// Pool.AllocateScoped. Its zero value is the "empty" handle returned when
// allocation fails — Valid reports false and Release is a no-op on it.
//
// Go has no destructors, so Handle cannot enforce release on every exit
// path the way languages with RAII do. The idiomatic substitute, the same
// Get-then-Release convention used by most pooled-resource APIs in Go, is:
//
//	h := p.AllocateScoped(construct)
//	if !h.Valid() {
//		return errPoolExhausted
//	}
//	defer h.Release()
//
// A deferred Release still runs on a panicking exit from the calling
// function, which covers the "panic during use" case; it does not cover a
// handle that a caller simply forgets to release or drops without
// deferring — that is a caller bug, exactly as a forgotten Close() on an
// io.Closer would be.
type Handle[T any] struct {
	pool  *Pool[T]
	index int
}

// Valid reports whether h refers to a live, occupied slot.
func (h Handle[T]) Valid() bool { return h.pool != nil }

// Value returns a pointer to the held T, or nil if h is empty.
func (h Handle[T]) Value() *T {
	if h.pool == nil {
		return nil
	}
	return &h.pool.slots[h.index].value
}

// Release runs T's Destroy hook (if any) and returns the slot to the pool.
// Release on an empty handle is a no-op. Calling Release twice on the same
// Handle value is also a no-op, because the first call already clears the
// handle to empty; releasing the same slot through two distinct handles
// (which AllocateScoped never produces) remains undefined behavior, as
// documented on ReleaseRaw.
func (h *Handle[T]) Release() {
	if h.pool == nil {
		return
	}
	p, index := h.pool, h.index
	h.pool = nil
	destroy(&p.slots[index].value)
	p.release(index)
}
