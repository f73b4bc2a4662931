package stack

import "iter"

// Iter iterates over copies of the elements of a list, from head to tail.
type Iter[T any] struct {
	list  *List[T]
	next  *node[T]
	stamp uint64
}

// Iter creates an iterator over the elements of l.
func (l *List[T]) Iter() *Iter[T] {
	l.mustNotBeBorrowed("iterate")
	return &Iter[T]{list: l, next: l.head, stamp: l.stamp}
}

// Next returns the next element. After the last element it returns false, and will
// keep doing so.
func (it *Iter[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	assertThat(it.stamp == it.list.stamp, "list modified during iteration")
	n := it.next
	it.next = n.next
	return n.elem, true
}

// Len is the number of elements Next will yet return.
func (it *Iter[T]) Len() int {
	return length(it.next)
}

// All returns a sequence of the elements of l, to be used in range loops.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for elem, ok := it.Next(); ok; elem, ok = it.Next() {
			if !yield(elem) {
				return
			}
		}
	}
}

// --- Mutable iteration -----------------------------------------------------

// IterMut iterates over pointers to the elements of a list, from head to tail.
// It is a single forward pass and cannot be copied or rewound.
type IterMut[T any] struct {
	_     noCopy
	list  *List[T]
	next  *node[T]
	stamp uint64
	done  bool
}

// IterMut creates an iterator over pointers to the elements of l. The list is
// mutably borrowed until the iterator is exhausted or closed.
func (l *List[T]) IterMut() *IterMut[T] {
	l.mustNotBeBorrowed("iterate mutably")
	l.borrowed = true
	return &IterMut[T]{list: l, next: l.head, stamp: l.stamp}
}

// Next returns a pointer to the next element. After the last element it returns
// false and ends the borrow of the list.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.next == nil {
		it.Close()
		return nil, false
	}
	assertThat(it.stamp == it.list.stamp, "list modified during iteration")
	n := it.next
	it.next = n.next
	return &n.elem, true
}

// Len is the number of elements Next will yet return.
func (it *IterMut[T]) Len() int {
	return length(it.next)
}

// Close ends the iteration early and returns the borrow of the list.
// Calling Close more than once is harmless.
func (it *IterMut[T]) Close() {
	if it.done {
		return
	}
	it.done = true
	it.next = nil
	it.list.borrowed = false
}

// Mutable returns a sequence of pointers to the elements of l, to be used in range
// loops. The list is mutably borrowed for the duration of the loop.
func (l *List[T]) Mutable() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := l.IterMut()
		defer it.Close()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// --- Consuming iteration ---------------------------------------------------

// IntoIter hands the elements of a list over to a client, from head to tail.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves all elements of l into a new iterator, leaving l empty.
func (l *List[T]) IntoIter() *IntoIter[T] {
	l.mustNotBeBorrowed("move out of list")
	it := &IntoIter[T]{list: List[T]{head: l.head}}
	l.head = nil
	l.stamp++
	return it
}

// Next pops the next element.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.Pop().Get()
}

// Len is the number of elements Next will yet return.
func (it *IntoIter[T]) Len() int {
	return it.list.Len()
}

// Clear drops all elements not yet handed out.
func (it *IntoIter[T]) Clear() {
	it.list.Clear()
}

// Drain returns a sequence which empties l, handing out its elements. Elements
// left over when the loop is ended early are dropped.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.IntoIter()
		defer it.Clear()
		for elem, ok := it.Next(); ok; elem, ok = it.Next() {
			if !yield(elem) {
				return
			}
		}
	}
}

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527. It is recognized
// by the copylocks checker of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
