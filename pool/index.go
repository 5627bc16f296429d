package pool

import "unsafe"

// indexOf recovers a slot index from a pointer into pool storage by
// pointer subtraction against the base of the slot array — constant time,
// no lookup table, and correct as long as the array stays contiguous and
// never moves (both guaranteed by New).
func (p *Pool[T]) indexOf(ptr *T) int {
	var zero slot[T]
	valueOffset := unsafe.Offsetof(zero.value)
	stride := unsafe.Sizeof(zero)

	base := uintptr(unsafe.Pointer(&p.slots[0]))
	target := uintptr(unsafe.Pointer(ptr))

	return int((target - base - valueOffset) / stride)
}
