package persistent

import "iter"

// Iter iterates over the elements of a persistent list, from head to tail.
// An iterator holds a reference to the node it will visit next, so the remaining
// elements stay available even if the list it has been created from is released.
// Iterators which are not run to exhaustion should be closed.
type Iter[T any, C any, PC RefCount[C]] struct {
	_    noCopy
	next *node[T, C, PC]
}

// Iter creates an iterator over the elements of l.
func (l *List[T, C, PC]) Iter() *Iter[T, C, PC] {
	return &Iter[T, C, PC]{next: l.head.clone()}
}

// Next returns the next element. After the last element it returns false, and will
// keep doing so.
func (it *Iter[T, C, PC]) Next() (T, bool) {
	n := it.next
	if n == nil {
		var zero T
		return zero, false
	}
	elem := n.elem
	it.next = n.next.clone()
	release(n)
	return elem, true
}

// Len is the number of elements Next will yet return.
func (it *Iter[T, C, PC]) Len() int {
	return length(it.next)
}

// Close gives up the iterator's reference to the remaining elements.
func (it *Iter[T, C, PC]) Close() {
	n := it.next
	it.next = nil
	release(n)
}

// All returns a sequence of the elements of l, to be used in range loops.
func (l *List[T, C, PC]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		defer it.Close()
		for elem, ok := it.Next(); ok; elem, ok = it.Next() {
			if !yield(elem) {
				return
			}
		}
	}
}
