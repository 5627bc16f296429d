package pool

import "errors"

// ErrExhausted is returned by AllocateRaw when every slot is occupied.
// It is an ordinary, expected outcome — not a fault — and is never
// retried internally.
var ErrExhausted = errors.New("pool: exhausted")

// ErrCapacity is returned by New when capacity is less than 1.
var ErrCapacity = errors.New("pool: capacity must be >= 1")
