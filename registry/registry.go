// File: registry/registry.go
//
// Per-type global pool registry: convenience on top of pool.Pool, never
// wired into the core allocator itself.

package registry

import (
	"reflect"
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/objpool/pool"
)

// Options configures how the registry constructs a pool the first time a
// type is requested. Once a type's pool exists its capacity cannot change,
// so later Get calls with different Options are ignored — this mirrors
// pool.Pool's own invariant that capacity is fixed at construction.
type Options struct {
	Capacity int
}

// DefaultOptions is used when a caller does not supply one, or supplies a
// non-positive Capacity.
var DefaultOptions = Options{Capacity: 1024}

// Registry is a process-wide, per-type pool cache. The zero Registry is
// not usable; construct one with New, or use Default for the shared
// package-level instance.
type Registry struct {
	mu     sync.Mutex
	byType map[reflect.Type]any // any is *pool.Pool[T] for the keyed T
	order  *queue.Queue         // registration order, for Registered()
}

// New creates an independent, empty registry.
func New() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]any),
		order:  queue.New(),
	}
}

var global = New()

// Default returns the process-wide registry singleton used by the
// package-level Get function.
func Default() *Registry { return global }

// Get returns r's pool for type T, lazily constructing it with opts on the
// first call for that type. The construction happens under r's lock, so
// concurrent first-use calls for the same type never race to create two
// pools.
func Get[T any](r *Registry, opts Options) *pool.Pool[T] {
	t := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byType[t]; ok {
		return existing.(*pool.Pool[T])
	}

	capacity := opts.Capacity
	if capacity < 1 {
		capacity = DefaultOptions.Capacity
	}

	p := pool.MustNew[T](capacity)
	r.byType[t] = p
	r.order.Add(t.String())
	return p
}

// Registered returns the names of all types with a constructed pool in r,
// in first-use order. Intended for introspection/debugging, not the hot
// path: it copies out of the underlying queue under r's lock.
func (r *Registry) Registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.order.Length()
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = r.order.Get(i).(string)
	}
	return names
}
