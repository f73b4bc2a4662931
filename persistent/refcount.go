package persistent

import "sync/atomic"

// Counter is the reference-count bookkeeping carried by every node of a persistent list.
// The zero value of a counter accounts for exactly one reference, the one created
// together with the node.
type Counter interface {
	// Retain accounts for an additional reference.
	Retain()
	// Release gives up a reference and reports whether it has been the last one.
	Release() bool
	// Count returns the number of references currently held.
	Count() int
}

// RefCount constrains type parameter PC to be a pointer to counter type C.
// Lists embed counters by value into their nodes.
type RefCount[C any] interface {
	*C
	Counter
}

// Local is a counter for lists used from a single goroutine. It does not synchronize.
type Local struct {
	extra int // references beyond the first
}

func (c *Local) Retain() {
	c.extra++
}

func (c *Local) Release() bool {
	c.extra--
	return c.extra < 0
}

func (c *Local) Count() int {
	return c.extra + 1
}

// Atomic is a counter for lists shared between goroutines. Retaining and releasing
// references are atomic operations.
type Atomic struct {
	extra atomic.Int64 // references beyond the first
}

func (c *Atomic) Retain() {
	c.extra.Add(1)
}

func (c *Atomic) Release() bool {
	return c.extra.Add(-1) < 0
}

func (c *Atomic) Count() int {
	return int(c.extra.Load()) + 1
}

var _ Counter = (*Local)(nil)
var _ Counter = (*Atomic)(nil)
