// File: pool/pool.go
//
// Core lock-free claim/release protocol over a fixed slot array. See doc.go
// for the package-level overview.

package pool

// SpuriousRetryCap bounds how many times the claim search retries a single
// slot's compare-and-swap before concluding the slot is genuinely occupied
// and moving on. A weak-CAS platform can fail a compare-and-swap even when
// the observed value matched the expected one; this cap keeps that retry
// bounded so the claim search stays lock-free rather than livelocking.
//
// Go's atomic.Bool.CompareAndSwap is defined as a strong CAS — it does not
// spuriously fail on any current Go implementation — so this loop never
// actually retries in practice. It is kept for algorithmic fidelity and
// because the retry cap is part of the pool's documented contract.
const SpuriousRetryCap = 3

// Pool is a fixed-capacity, lock-free allocator for values of type T.
// The zero Pool is not usable; construct one with New.
type Pool[T any] struct {
	slots    []slot[T]
	hint     hintCell
	capacity int
}

// New creates a pool with the given fixed capacity, which must be >= 1.
// The slot array is allocated once here; no further allocation occurs for
// the pool's lifetime.
func New[T any](capacity int) (*Pool[T], error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}
	return &Pool[T]{
		slots:    make([]slot[T], capacity),
		capacity: capacity,
	}, nil
}

// MustNew is New but panics on invalid capacity. Intended for package-level
// or lazily-initialized call sites where a construction error can only mean
// a programming mistake — see the registry package.
func MustNew[T any](capacity int) *Pool[T] {
	p, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return p
}

// Capacity returns the pool's fixed slot count.
func (p *Pool[T]) Capacity() int { return p.capacity }

// claim finds a free slot starting from the shared hint and atomically
// flips it to occupied. It reports ok=false only after a full sweep of
// every slot has found none free.
func (p *Pool[T]) claim() (index int, ok bool) {
	n := uint64(p.capacity)
	start := p.hint.load()

	for k := uint64(0); k < n; k++ {
		i := (start + k) % n
		s := &p.slots[i]

		for retry := 0; retry < SpuriousRetryCap; retry++ {
			if s.occupied.CompareAndSwap(false, true) {
				p.hint.store((i + 1) % n)
				return int(i), true
			}
			if s.occupied.Load() {
				break // genuinely occupied; probe the next slot
			}
			// Observed value was still free: a spurious CAS failure.
			// Retry the same slot before giving up on it.
		}
	}
	return 0, false
}

// release atomically flips slot index back to free. Callers must have
// already destroyed whatever value lived there.
func (p *Pool[T]) release(index int) {
	p.slots[index].occupied.Store(false)
}

// destroy runs T's Destroy hook if it implements one, then zeroes the
// slot's storage so no stale reference outlives the release — the
// idiomatic Go stand-in for running a destructor before the memory is
// reused.
func destroy[T any](v *T) {
	if d, ok := any(v).(interface{ Destroy() }); ok {
		d.Destroy()
	}
	var zero T
	*v = zero
}
