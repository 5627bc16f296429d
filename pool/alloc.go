// File: pool/alloc.go
//
// The construction/destruction boundary and the public allocation surface:
// AllocateRaw, AllocateScoped, ReleaseRaw.

package pool

import "fmt"

// AllocateRaw claims a free slot and constructs a T on it in place by
// calling construct. On success it returns a pointer into pool storage
// that remains valid until the matching ReleaseRaw.
//
// If the pool is exhausted, AllocateRaw returns (nil, ErrExhausted) without
// calling construct. If construct returns an error, or panics, the claimed
// slot is returned to free before the failure is reported: the pool is
// left with no live object in that slot either way.
func (p *Pool[T]) AllocateRaw(construct func() (T, error)) (ptr *T, err error) {
	index, ok := p.claim()
	if !ok {
		return nil, ErrExhausted
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if r := recover(); r != nil {
			p.release(index)
			panic(r)
		}
	}()

	v, cerr := construct()
	if cerr != nil {
		p.release(index)
		return nil, fmt.Errorf("pool: construct: %w", cerr)
	}

	p.slots[index].value = v
	committed = true
	return &p.slots[index].value, nil
}

// AllocateScoped is AllocateRaw wrapped in an owning Handle. Unlike
// AllocateRaw it never surfaces a construction failure to the caller:
// both exhaustion and a failing (or panicking) construct produce an empty
// Handle. Callers should defer h.Release() immediately after checking
// h.Valid().
func (p *Pool[T]) AllocateScoped(construct func() (T, error)) (h Handle[T]) {
	index, ok := p.claim()
	if !ok {
		return Handle[T]{}
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		recover() // suppress: scoped form never propagates construction failure
		p.release(index)
	}()

	v, cerr := construct()
	if cerr != nil {
		return Handle[T]{}
	}

	p.slots[index].value = v
	committed = true
	return Handle[T]{pool: p, index: index}
}

// ReleaseRaw returns a pointer previously obtained from AllocateRaw on this
// same pool. ptr == nil is accepted as a no-op.
//
// Passing a pointer that did not come from this pool, or releasing the
// same pointer twice, is undefined behavior — see debug.go for the
// poolsafety build tag, which checks the recovered index against
// [0, Capacity) and panics with a descriptive message. Without the tag an
// out-of-range index still panics, through Go's slice bounds check; an
// in-range index from a foreign or already-released pointer is not
// detected either way.
func (p *Pool[T]) ReleaseRaw(ptr *T) {
	if ptr == nil {
		return
	}
	index := p.indexOf(ptr)
	debugCheckIndex(p, index)
	destroy(&p.slots[index].value)
	p.release(index)
}
