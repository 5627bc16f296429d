package pool

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// slot is one cell of the pool's backing array: an atomic occupancy flag
// plus in-place storage for exactly one T. Its address is stable for the
// lifetime of the pool — slots are never moved or reallocated.
//
// occupied and value are placed adjacently on purpose: unlike the search
// hint below, a slot's flag is meant to share a cache line with its own
// storage, since the same goroutine touches both together.
type slot[T any] struct {
	occupied atomic.Bool
	value    T
}

// hintCell holds the shared claim-search hint. It is padded onto its own
// cache line with cpu.CacheLinePad so that hint traffic — read on every
// claim, written on every successful claim — never causes false sharing
// with the slot array it indexes into.
type hintCell struct {
	v atomic.Uint64
	_ cpu.CacheLinePad
}

func (h *hintCell) load() uint64  { return h.v.Load() }
func (h *hintCell) store(x uint64) { h.v.Store(x) }
