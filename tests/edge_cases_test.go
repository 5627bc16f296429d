// edge_cases_test.go — black-box property and scenario tests for the
// object pool, exercised through the published module path the way an
// external consumer would.
package tests

import (
	"errors"
	"testing"

	"github.com/momentics/objpool/pool"
)

// TestCapacityOfOne is the minimal legal pool: exactly one slot, exactly
// one live allocation possible at a time.
func TestCapacityOfOne(t *testing.T) {
	p := pool.MustNew[int](1)

	ptr, err := p.AllocateRaw(func() (int, error) { return 1, nil })
	if err != nil {
		t.Fatalf("first allocation on capacity-1 pool: %v", err)
	}
	if _, err := p.AllocateRaw(func() (int, error) { return 2, nil }); !errors.Is(err, pool.ErrExhausted) {
		t.Fatalf("second allocation should be exhausted, got err=%v", err)
	}

	p.ReleaseRaw(ptr)

	if _, err := p.AllocateRaw(func() (int, error) { return 3, nil }); err != nil {
		t.Fatalf("allocation after release: %v", err)
	}
}

// TestConstructionIntegrity is P4: every pointer handed out points to a
// fully constructed value until its matching release.
func TestConstructionIntegrity(t *testing.T) {
	type record struct {
		magic int
		label string
	}

	p := pool.MustNew[record](16)

	var ptrs []*record
	for i := 0; i < 16; i++ {
		i := i
		ptr, err := p.AllocateRaw(func() (record, error) {
			return record{magic: 0xC0FFEE, label: "constructed"}, nil
		})
		if err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
		if ptr.magic != 0xC0FFEE || ptr.label != "constructed" {
			t.Fatalf("allocate %d: got %+v, want a fully constructed record", i, *ptr)
		}
		ptrs = append(ptrs, ptr)
	}

	for _, ptr := range ptrs {
		p.ReleaseRaw(ptr)
	}
}

// TestExhaustionThenScopedFallback mirrors a common real-world pattern: try
// the scoped API, and only fall back to some other strategy on exhaustion.
func TestExhaustionThenScopedFallback(t *testing.T) {
	p := pool.MustNew[int](1)

	h1 := p.AllocateScoped(func() (int, error) { return 1, nil })
	if !h1.Valid() {
		t.Fatal("expected first scoped allocation to succeed")
	}
	defer h1.Release()

	h2 := p.AllocateScoped(func() (int, error) { return 2, nil })
	if h2.Valid() {
		t.Fatal("expected exhaustion on a capacity-1 pool's second scoped allocation")
	}

	// Simulated fallback: heap-allocate directly instead of retrying.
	fallback := new(int)
	*fallback = 2
	if *fallback != 2 {
		t.Fatal("fallback path broken")
	}
}

// TestReleaseRawRecoversCorrectIndex allocates every slot, releases them in
// reverse order, and checks each release lands on the right slot: every
// pointer still holds its own value just before its release, and the pool
// is fully free once all of them are released.
func TestReleaseRawRecoversCorrectIndex(t *testing.T) {
	const n = 32
	p := pool.MustNew[int](n)

	ptrs := make([]*int, n)
	for i := 0; i < n; i++ {
		i := i
		ptr, err := p.AllocateRaw(func() (int, error) { return i, nil })
		if err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
		ptrs[i] = ptr
	}

	for i := n - 1; i >= 0; i-- {
		if *ptrs[i] != i {
			t.Fatalf("slot for allocation %d holds value %d before release", i, *ptrs[i])
		}
		p.ReleaseRaw(ptrs[i])
	}

	if snap := p.Snapshot(); snap.Used != 0 {
		t.Fatalf("expected used=0 after releasing every slot, got %d", snap.Used)
	}
}
