/*
Package maybe provides optional values.

Lists in this module report "no value" instead of failing: popping from an empty stack,
peeking at it, or asking an empty persistent list for its head all return Nothing. A
Maybe is a small value, passed around by copy.

Clients may either destructure a Maybe with Get, or pattern-match it:

	var v int
	switch m := list.Pop().Match(); m {
	case m.Just(&v):
	    fmt.Printf("popped %d\n", v)
	case m.Nothing():
	    fmt.Println("list was empty")
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is either Just(x) or Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing returns the empty Maybe for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the wrapped value and true, or the zero value of T and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// IsJust is true if m wraps a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// IsNothing is true if m is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// WithDefault returns the wrapped value, or def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a wrapped value. Nothing maps to Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which itself may produce nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher to be used in a switch statement.
func (m Maybe[T]) Match() Matcher[T] {
	v := m.value
	return matcher[T]{just: m.tag, value: &v}
}

// Matcher selects a case of a switch over a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher holds a pointer to a copy of the value, keeping matchers comparable
// for any T.
type matcher[T any] struct {
	just  bool
	value *T
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.just {
		*v = *mm.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.just {
		return mm
	}
	return nil
}
