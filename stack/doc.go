/*
Package stack implements a singly linked list with stack operations.

A List owns its nodes exclusively: every node is referenced by exactly one other node
or by the list's head. Elements are pushed to and popped from the front of the list,
therefore iteration visits elements in reverse order of insertion:

	var l stack.List[int]
	l.Push(1)
	l.Push(2)
	l.Push(3)
	fmt.Println(l.String())   // prints [3, 2, 1]

The zero value of List is an empty list, ready to use.

Iteration

Lists offer three kinds of iterators: Iter yields copies of the elements, IterMut yields
pointers to the elements, allowing clients to modify them in place, and IntoIter hands
the elements over to the client, leaving the list empty. Each comes with a range-over-func
counterpart (All, Mutable and Drain).

A mutable iterator is the only path to the elements it has not yet visited. While it
is live the list is mutably borrowed: any structural change to the list, any other
iterator and any peek at the list will panic. The borrow ends when the iterator is
exhausted or closed; range loops over Mutable close the iterator automatically.
Iterators check that the list has not been changed structurally since they were
created and panic otherwise.

Lists are not safe for concurrent use. Clients have to synchronize access themselves.

Length

Lists do not cache their length. Push and Pop stay O(1), while Len walks the list in O(n).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"fmt"

	"github.com/npillmayer/linkedlists/version"
	"github.com/npillmayer/schuko/tracing"
)

// Version returns the version tag of this list family. It is independent from the
// version of the module.
func Version() version.Tag {
	return version.New(1, 4, 0)
}

// tracer traces with key 'linkedlists.stack'.
func tracer() tracing.Trace {
	return tracing.Select("linkedlists.stack")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}
