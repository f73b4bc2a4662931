package persistent

// node is a node of a persistent list. Nodes are never modified after creation,
// except for being emptied when reclaimed. Every non-nil pointer to a node held by a
// list, a node or an iterator counts as one reference.
type node[T any, C any, PC RefCount[C]] struct {
	refs C
	elem T
	next *node[T, C, PC]
}

func (n *node[T, C, PC]) counter() PC {
	return PC(&n.refs)
}

// clone creates an additional reference to n. Cloning nil is a no-op.
func (n *node[T, C, PC]) clone() *node[T, C, PC] {
	if n != nil {
		n.counter().Retain()
	}
	return n
}

// tryUnwrap gives up a reference to n. If it has been the last one, n is reclaimed:
// its reference to the successor is handed over to the caller and true is returned.
// Otherwise n stays intact for its other owners and tryUnwrap reports false.
func (n *node[T, C, PC]) tryUnwrap() (*node[T, C, PC], bool) {
	assertThat(n.counter().Count() > 0, "release of a node which has already been reclaimed")
	if !n.counter().Release() {
		return nil, false
	}
	var zero T
	next := n.next
	n.elem, n.next = zero, nil
	return next, true
}

// release gives up a reference to the chain starting at n. It reclaims nodes as long
// as the reference handed down the chain is the last one and returns the number of
// nodes reclaimed.
func release[T any, C any, PC RefCount[C]](n *node[T, C, PC]) int {
	count := 0
	for n != nil {
		next, ok := n.tryUnwrap()
		if !ok {
			break // remaining nodes are shared with other owners
		}
		n = next
		count++
	}
	return count
}

func length[T any, C any, PC RefCount[C]](n *node[T, C, PC]) int {
	count := 0
	for ; n != nil; n = n.next {
		count++
	}
	return count
}
