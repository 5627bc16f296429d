// Package registry provides a process-wide, per-type cache of *pool.Pool
// instances.
//
// The core pool package deliberately knows nothing about this: a
// pool.Pool[T] is a standalone value with an explicit constructor and an
// explicit lifetime. registry is the convenience layer on top, keyed by Go
// type instead of by some resource-locality identifier.
//
// A registry entry, once constructed, is never torn down: there is no safe
// way to know that every caller holding a pointer or Handle from it has
// finished, so teardown ordering against arbitrary user code is left
// unsolved on purpose, exactly as with any other program-lifetime
// singleton.
package registry
