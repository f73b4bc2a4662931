/*
Package rc provides persistent lists for use on a single goroutine.

Reference counts of list nodes are plain integers, which makes sharing and releasing nodes
cheap. Lists of this package must not be shared between goroutines; the race detector
will complain if they are. Package arc has the same API with atomic reference counts.

	a := rc.FromSlice(1, 2)       // [2, 1]
	b := a.Tail()                 // [1]
	c := b.Prepend(3)             // [3, 1]
	a.Release()                   // b and c still hold the node of 1

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rc

import (
	"github.com/npillmayer/linkedlists/persistent"
	"github.com/npillmayer/linkedlists/version"
)

// List is a persistent singly linked list with non-atomic reference counting.
type List[T any] = persistent.List[T, persistent.Local, *persistent.Local]

// Iter iterates over the elements of a List.
type Iter[T any] = persistent.Iter[T, persistent.Local, *persistent.Local]

// New creates an empty list.
func New[T any]() *List[T] {
	return persistent.New[T, persistent.Local]()
}

// FromSlice creates a list by prepending elems, in order. The last element will be
// the head of the list.
func FromSlice[T any](elems ...T) *List[T] {
	return persistent.FromSlice[T, persistent.Local](elems...)
}

// Equal compares the elements of two lists.
func Equal[T comparable](a, b *List[T]) bool {
	return persistent.Equal(a, b)
}

// Version returns the version tag of this list family.
func Version() version.Tag {
	return version.New(1, 0, 0)
}
