//go:build !poolsafety

package pool

// debugCheckIndex is a no-op in production builds; see debug.go.
func debugCheckIndex[T any](p *Pool[T], index int) {}
