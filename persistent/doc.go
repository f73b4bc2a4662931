/*
Package persistent implements an immutable persistent singly linked list.

Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them. A persistent list is the simplest of them: prepending an element creates
a new list whose first node links to the existing chain, without copying it. Taking the tail of
a list creates a new list starting at the second node. Any number of lists may thus share a
common suffix:

	a := rc.New[int]().Prepend(1).Prepend(2)   // [2, 1]
	b := a.Tail()                             // [1], sharing the node of 1 with a
	c := b.Prepend(3)                         // [3, 1], sharing the same node

Nodes are reference counted. Every list, every node and every live iterator pointing to a node
holds one reference to it. Releasing a list gives up its references: nodes are reclaimed
from the head on for as long as the list was their last owner; the walk stops at the first node
still shared with another list, whose owners are then responsible for the rest of the chain.
Release never recurses, so chains of any length may be released.

Reference counting is pluggable. The list is implemented once, generic over a Counter.
Package rc instantiates it with a plain counter for lists which stay on a single goroutine;
package arc instantiates it with an atomic counter for lists shared between goroutines.
Both have an identical API. Clients will rarely use this package directly.

Lists are used by pointer. Copying a List value would duplicate its reference to the head node
without accounting for it; use Clone instead (go vet will warn about copies).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linkedlists.persistent'.
func tracer() tracing.Trace {
	return tracing.Select("linkedlists.persistent")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent: "+msg, msgargs...)
		panic(msg)
	}
}
