// Package pool implements a fixed-capacity, lock-free object pool for a
// single type T.
//
// # Overview
//
// A Pool[T] pre-allocates a contiguous array of Capacity slots when
// constructed and never grows, shrinks, or moves them again. Callers claim
// a slot, get a freshly constructed T, use it, and give the slot back.
// Every operation on the hot path is either wait-free (release) or
// lock-free (allocation): no operation ever blocks on a mutex, and no
// caller can be starved indefinitely by another caller's scheduling.
//
// This is the allocator you reach for on a latency-sensitive path — a
// per-request object, a per-packet parser state — where the variance of
// the general-purpose heap allocator (and its GC pressure) is worse than
// the cost of pre-declaring a maximum population.
//
// # Basic usage
//
//	p, err := pool.New[Connection](1024)
//	if err != nil { ... }
//
//	h := p.AllocateScoped(func() (Connection, error) {
//		return Connection{ID: 7}, nil
//	})
//	if !h.Valid() {
//		// pool exhausted
//	}
//	defer h.Release()
//	h.Value().Use()
//
// # Raw form
//
// AllocateRaw/ReleaseRaw skip the owning Handle for callers who need to
// store the pointer somewhere with an independent lifetime, or who want to
// observe a constructor error instead of an empty handle:
//
//	ptr, err := p.AllocateRaw(func() (Connection, error) {
//		return Connection{ID: 7}, err
//	})
//	if err != nil { ... }
//	defer p.ReleaseRaw(ptr)
//
// # Thread safety
//
// Every exported method on Pool[T] is safe to call concurrently from any
// number of goroutines. There is no per-pool lock; coordination happens
// per-slot via a single atomic occupancy flag, exactly as described in the
// package's design notes.
//
// # What this is not
//
// The pool never resizes and serves exactly one concrete T. It does not
// validate that a pointer passed to ReleaseRaw actually came from this
// pool — that is undefined behavior, matching the contract of most
// fixed-capacity allocators in this space. Build with the poolsafety tag
// to get an explicit bounds check, with a descriptive panic, on the
// recovered slot index; without it an out-of-range index panics through
// Go's ordinary slice bounds check.
package pool
