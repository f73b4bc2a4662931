/*
Package arc provides persistent lists which may be shared between goroutines.

Reference counts of list nodes are updated atomically. Any number of goroutines may
prepend to, take tails of, clone, iterate over and release lists sharing nodes, without
further synchronization. Nodes are never modified after they have been created, so readers
do not need any coordination.

A single List value must still not be released by one goroutine while another one
is using it; hand out clones instead:

	shared := arc.FromSlice(1, 2, 3)
	for i := 0; i < 4; i++ {
	    mine := shared.Clone()
	    go func() {
	        defer mine.Release()
	        …
	    }()
	}

Atomic reference counting is more expensive than the plain counters of package rc,
which has the same API.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arc

import (
	"github.com/npillmayer/linkedlists/persistent"
	"github.com/npillmayer/linkedlists/version"
)

// List is a persistent singly linked list with atomic reference counting.
type List[T any] = persistent.List[T, persistent.Atomic, *persistent.Atomic]

// Iter iterates over the elements of a List.
type Iter[T any] = persistent.Iter[T, persistent.Atomic, *persistent.Atomic]

// New creates an empty list.
func New[T any]() *List[T] {
	return persistent.New[T, persistent.Atomic]()
}

// FromSlice creates a list by prepending elems, in order. The last element will be
// the head of the list.
func FromSlice[T any](elems ...T) *List[T] {
	return persistent.FromSlice[T, persistent.Atomic](elems...)
}

// Equal compares the elements of two lists.
func Equal[T comparable](a, b *List[T]) bool {
	return persistent.Equal(a, b)
}

// Version returns the version tag of this list family. The thread-safe list is
// still experimental.
func Version() version.Tag {
	return version.New(0, 1, 0)
}
