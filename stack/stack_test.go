package stack

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPop(t *testing.T) {
	l := New[int]()
	if !l.Pop().IsNothing() {
		t.Error("expected pop from empty list to return Nothing, didn't")
	}
	l.Push(1)
	l.Push(2)
	assert.Equal(t, 2, l.Pop().WithDefault(-1))
	assert.Equal(t, 1, l.Pop().WithDefault(-1))
	for i := 0; i < 3; i++ {
		if !l.Pop().IsNothing() {
			t.Errorf("expected pop #%d from emptied list to return Nothing, didn't", i)
		}
	}
}

func TestPushPopIsLIFO(t *testing.T) {
	for n := 0; n < 20; n++ {
		var l List[int]
		for i := 0; i < n; i++ {
			l.Push(i)
		}
		for i := n - 1; i >= 0; i-- {
			v, ok := l.Pop().Get()
			require.True(t, ok, "list of %d exhausted too early", n)
			require.Equal(t, i, v)
		}
		assert.True(t, l.Pop().IsNothing())
	}
}

func TestZeroValueIsEmptyList(t *testing.T) {
	var l List[string]
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "[]", l.String())
	l.Push("x")
	assert.False(t, l.IsEmpty())
}

func TestPeek(t *testing.T) {
	l := New[int]()
	assert.True(t, l.Peek().IsNothing())
	assert.True(t, l.PeekMut().IsNothing())
	l.Push(1)
	l.Push(2)
	assert.Equal(t, 2, l.Peek().WithDefault(-1))
	p, ok := l.PeekMut().Get()
	require.True(t, ok)
	require.Equal(t, 2, *p)
	*p = 42
	assert.Equal(t, 42, l.Peek().WithDefault(-1))
	assert.Equal(t, 42, l.Pop().WithDefault(-1))
	assert.Equal(t, 1, l.Pop().WithDefault(-1))
}

func TestIsEmpty(t *testing.T) {
	l := New[int]()
	assert.True(t, l.IsEmpty())
	l.Push(1)
	assert.False(t, l.IsEmpty())
	l.Pop()
	assert.True(t, l.IsEmpty())
}

func TestLen(t *testing.T) {
	for n := 0; n < 10; n++ {
		l := New[int]()
		for i := 0; i < n; i++ {
			l.Push(i)
		}
		if l.Len() != n {
			t.Errorf("expected length %d, is %d", n, l.Len())
		}
		popped := l.Pop()
		if n == 0 {
			assert.True(t, popped.IsNothing())
			assert.Equal(t, 0, l.Len())
		} else {
			assert.Equal(t, n-1, l.Len())
		}
	}
}

func TestClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkedlists.stack")
	defer teardown()
	//
	l := FromSlice(1, 2, 3)
	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Pop().IsNothing())
	l.Clear() // clearing an empty list is fine
	assert.True(t, l.IsEmpty())
}

func TestClearLongList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkedlists.stack")
	defer teardown()
	//
	const n = 100000
	l := New[int]()
	for i := 0; i < n; i++ {
		l.Push(i)
	}
	head := l.head
	second := head.next
	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Nil(t, head.next, "expected cleared node to be detached")
	assert.Nil(t, second.next, "expected cleared node to be detached")
}

func TestDebugRendering(t *testing.T) {
	l := New[int]()
	assert.Equal(t, "[]", l.String())
	l.Push(1)
	l.Push(2)
	l.Push(3)
	assert.Equal(t, "[3, 2, 1]", l.String())
	l.Pop()
	assert.Equal(t, "[2, 1]", l.String())
}

func TestIter(t *testing.T) {
	l := FromSlice(1, 2)
	it := l.Iter()
	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok, "expected exhausted iterator to stay exhausted")
	assert.Equal(t, 2, l.Len(), "expected iteration to leave list untouched")
}

func TestIterLenIsExact(t *testing.T) {
	for n := 0; n < 30; n++ {
		l := New[int]()
		for i := 0; i < n; i++ {
			l.Push(i)
		}
		it := l.Iter()
		for {
			remaining := it.Len()
			count := 0
			probe := &Iter[int]{list: l, next: it.next, stamp: it.stamp}
			for _, ok := probe.Next(); ok; _, ok = probe.Next() {
				count++
			}
			if remaining != count {
				t.Fatalf("n=%d: iterator reports %d remaining, yields %d", n, remaining, count)
			}
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

func TestIterMut(t *testing.T) {
	l := FromSlice(1, 2)
	it := l.IterMut()
	assert.Equal(t, 2, it.Len())
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p += 10
	}
	assert.False(t, l.borrowed, "expected exhausted iterator to end the borrow")
	got := slices.Collect(l.All())
	if diff := cmp.Diff([]int{12, 11}, got); diff != "" {
		t.Errorf("mutable iteration mismatch (-want +got):\n%s", diff)
	}
}

func TestMutable(t *testing.T) {
	l := FromSlice(1, 2, 3)
	for p := range l.Mutable() {
		*p *= 2
	}
	assert.Equal(t, "[6, 4, 2]", l.String())
	for p := range l.Mutable() {
		*p = 0
		break
	}
	assert.False(t, l.borrowed, "expected range loop to end the borrow")
	assert.Equal(t, "[0, 4, 2]", l.String())
}

func TestMutableBorrowIsExclusive(t *testing.T) {
	l := FromSlice(1, 2, 3)
	it := l.IterMut()
	assert.Panics(t, func() { l.IterMut() })
	assert.Panics(t, func() { l.Iter() })
	assert.Panics(t, func() { l.Push(4) })
	assert.Panics(t, func() { l.Pop() })
	assert.Panics(t, func() { l.Peek() })
	assert.Panics(t, func() { l.PeekMut() })
	assert.Panics(t, func() { l.Clear() })
	assert.Panics(t, func() { l.IntoIter() })
	assert.Equal(t, 3, l.Len(), "expected Len to be available while borrowed")
	it.Close()
	it.Close()
	assert.NotPanics(t, func() { l.Push(4) })
	_, ok := it.Next()
	assert.False(t, ok, "expected closed iterator to yield nothing")
}

func TestStaleIteratorPanics(t *testing.T) {
	l := FromSlice(1, 2, 3)
	it := l.Iter()
	it.Next()
	l.Push(4)
	assert.Panics(t, func() { it.Next() })
	assert.Panics(t, func() {
		for range l.All() {
			l.Pop()
		}
	})
}

func TestIntoIter(t *testing.T) {
	l := FromSlice(1, 2)
	it := l.IntoIter()
	assert.True(t, l.IsEmpty(), "expected IntoIter to take all elements")
	assert.Equal(t, 2, it.Len())
	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, it.Len())
}

func TestFromSeq(t *testing.T) {
	l := FromSeq(slices.Values([]int{1, 2, 3}))
	got := slices.Collect(l.Drain())
	if diff := cmp.Diff([]int{3, 2, 1}, got); diff != "" {
		t.Errorf("bulk construction mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, l.IsEmpty())
}

func TestDrainLoop(t *testing.T) {
	l := FromSlice(1, 2, 3)
	i := 3
	for elem := range l.Drain() {
		assert.Equal(t, i, elem)
		i--
	}
	assert.Equal(t, 0, i)

	l = FromSlice(1, 2, 3)
	for range l.Drain() {
		break
	}
	assert.True(t, l.IsEmpty(), "expected drained list to be empty after early break")
}

func TestExtend(t *testing.T) {
	l := New[int]()
	l.Push(1)
	l.Extend(slices.Values([]int{2, 3, 4}))
	for _, want := range []int{4, 3, 2, 1} {
		assert.Equal(t, want, l.Pop().WithDefault(-1))
	}
	assert.True(t, l.Pop().IsNothing())
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.4.0", Version().String())
}
