package persistent

import (
	"fmt"
	"strings"

	"github.com/npillmayer/linkedlists/maybe"
)

// List is an immutable persistent singly linked list. None of its operations changes
// the elements visible through a list; operations which look like modifications return
// a new list instead. A zero List is an empty list.
//
// Type parameter C selects the reference counting strategy, see Local and Atomic.
type List[T any, C any, PC RefCount[C]] struct {
	_    noCopy
	head *node[T, C, PC]
}

// New creates an empty list.
func New[T any, C any, PC RefCount[C]]() *List[T, C, PC] {
	return &List[T, C, PC]{}
}

// FromSlice creates a list by prepending elems, in order. The last element will be
// the head of the list.
func FromSlice[T any, C any, PC RefCount[C]](elems ...T) *List[T, C, PC] {
	var head *node[T, C, PC]
	for _, elem := range elems {
		head = &node[T, C, PC]{elem: elem, next: head}
	}
	return &List[T, C, PC]{head: head}
}

// --- API -------------------------------------------------------------------

// Prepend returns a new list with elem in front of the elements of l. l itself is
// unchanged and shares all its nodes with the new list. Prepend is O(1).
func (l *List[T, C, PC]) Prepend(elem T) *List[T, C, PC] {
	return &List[T, C, PC]{head: &node[T, C, PC]{elem: elem, next: l.head.clone()}}
}

// Tail returns a new list with all elements of l but the first one. The tail of an
// empty list is empty. Tail is O(1).
func (l *List[T, C, PC]) Tail() *List[T, C, PC] {
	if l.head == nil {
		return New[T, C, PC]()
	}
	return &List[T, C, PC]{head: l.head.next.clone()}
}

// Head returns the first element of l, or Nothing for an empty list.
func (l *List[T, C, PC]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elem)
}

// IsEmpty is true for a list without elements.
func (l *List[T, C, PC]) IsEmpty() bool {
	return l.head == nil
}

// Len counts the elements of l. The length is not cached, Len is O(n).
func (l *List[T, C, PC]) Len() int {
	return length(l.head)
}

// Clone returns a list with the same elements as l, sharing all nodes. Clone is O(1).
func (l *List[T, C, PC]) Clone() *List[T, C, PC] {
	return &List[T, C, PC]{head: l.head.clone()}
}

// Release gives up l's references to its nodes, leaving l empty. Nodes only l has been
// holding are reclaimed, nodes shared with other lists or iterators stay intact.
// Releasing a list more than once is a no-op.
func (l *List[T, C, PC]) Release() {
	head := l.head
	if head == nil {
		return
	}
	l.head = nil
	n := release(head)
	tracer().Debugf("release: reclaimed %d nodes", n)
}

// RefCount returns the number of references to the first node of l, including l's own.
// It returns 0 for an empty list.
func (l *List[T, C, PC]) RefCount() int {
	if l.head == nil {
		return 0
	}
	return l.head.counter().Count()
}

// Shared returns the number of nodes l and other have in common. Lists derived from
// a common ancestor share a suffix of nodes.
func (l *List[T, C, PC]) Shared(other *List[T, C, PC]) int {
	a, b := l.head, other.head
	la, lb := length(a), length(b)
	for ; la > lb; la-- {
		a = a.next
	}
	for ; lb > la; lb-- {
		b = b.next
	}
	for a != b {
		a, b = a.next, b.next
		la--
	}
	return la
}

// String renders the elements of the list from head to tail, e.g. "[3, 2, 1]".
func (l *List[T, C, PC]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", n.elem))
	}
	b.WriteByte(']')
	return b.String()
}

// Equal compares the elements of two lists. Lists sharing their nodes from some
// point on are known to be equal from there.
func Equal[T comparable, C any, PC RefCount[C]](a, b *List[T, C, PC]) bool {
	x, y := a.head, b.head
	for x != y {
		if x == nil || y == nil || x.elem != y.elem {
			return false
		}
		x, y = x.next, y.next
	}
	return true
}

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527. It is recognized
// by the copylocks checker of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
