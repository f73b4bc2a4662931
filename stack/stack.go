package stack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/linkedlists/maybe"
)

// List is a singly linked list with stack operations. The zero value is an empty list.
type List[T any] struct {
	head     *node[T]
	stamp    uint64 // incremented on every structural change
	borrowed bool   // a mutable iterator is live
}

type node[T any] struct {
	elem T
	next *node[T]
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSeq creates a list by pushing all elements of seq, in order. The last element
// of seq will be the head of the list.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.Extend(seq)
	return l
}

// FromSlice creates a list by pushing elems, in order. The last element will be the
// head of the list.
func FromSlice[T any](elems ...T) *List[T] {
	l := New[T]()
	for _, elem := range elems {
		l.Push(elem)
	}
	return l
}

// --- API -------------------------------------------------------------------

// Push puts elem in front of the list.
func (l *List[T]) Push(elem T) {
	l.mustNotBeBorrowed("push")
	l.head = &node[T]{elem: elem, next: l.head}
	l.stamp++
}

// Pop removes the first element from the list and returns it. Popping from an
// empty list returns Nothing.
func (l *List[T]) Pop() maybe.Maybe[T] {
	l.mustNotBeBorrowed("pop")
	n := l.head
	if n == nil {
		return maybe.Nothing[T]()
	}
	l.head = n.next
	l.stamp++
	return maybe.Just(n.detach())
}

// Peek returns the first element of the list, or Nothing for an empty list.
func (l *List[T]) Peek() maybe.Maybe[T] {
	l.mustNotBeBorrowed("peek")
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elem)
}

// PeekMut returns a pointer to the first element of the list, or Nothing for an
// empty list. Writing through the pointer changes the element in place. The pointer
// must not be used after the element has been popped.
func (l *List[T]) PeekMut() maybe.Maybe[*T] {
	l.mustNotBeBorrowed("peek")
	if l.head == nil {
		return maybe.Nothing[*T]()
	}
	return maybe.Just(&l.head.elem)
}

// IsEmpty is true for a list without elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len counts the elements of the list. The length is not cached, Len is O(n).
func (l *List[T]) Len() int {
	return length(l.head)
}

// Clear removes all elements from the list. Nodes are detached one at a time,
// so clearing long lists does not use stack space proportional to their length.
func (l *List[T]) Clear() {
	l.mustNotBeBorrowed("clear")
	if l.head == nil {
		return
	}
	n := clearChain(l.head)
	l.head = nil
	l.stamp++
	tracer().Debugf("cleared %d nodes", n)
}

// Extend pushes all elements of seq, in order.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	l.mustNotBeBorrowed("extend")
	for elem := range seq {
		l.Push(elem)
	}
}

// String renders the elements of the list from head to tail, e.g. "[3, 2, 1]".
func (l *List[T]) String() string {
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

// --- Helpers ---------------------------------------------------------------

func (l *List[T]) mustNotBeBorrowed(op string) {
	assertThat(!l.borrowed, "cannot %s: list is mutably borrowed", op)
}

// detach cuts n from its successor and hands out its element. n is left without
// any reference to the element.
func (n *node[T]) detach() T {
	var zero T
	elem := n.elem
	n.elem, n.next = zero, nil
	return elem
}

// clearChain detaches all nodes starting at n and returns their number.
func clearChain[T any](n *node[T]) int {
	count := 0
	for n != nil {
		next := n.next
		n.detach()
		n = next
		count++
	}
	return count
}

func length[T any](n *node[T]) int {
	count := 0
	for ; n != nil; n = n.next {
		count++
	}
	return count
}
