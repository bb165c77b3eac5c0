// Package plist implements a persistent list: an eagerly built sequence that
// knows its length.
//
// A List is a seq.Seq, so every operator in package seq accepts it. Lists only
// grow at the front through Conj, and Conj never changes the list it is called
// on.
package plist

import (
	"fmt"
	"iter"

	"github.com/charmingruby/lazyseq/seq"
)

// List is a persistent list. The zero List is empty and ready to use.
type List[T any] struct {
	// cell is nil for the empty list; otherwise its rest is the previous
	// *List, so Rest stays a List.
	cell seq.Seq[T]
	size int
}

var _ seq.Seq[int] = (*List[int])(nil)

// Empty returns the empty list.
func Empty[T any]() *List[T] {
	return &List[T]{}
}

// Of returns the list holding values in order.
func Of[T any](values ...T) *List[T] {
	l := Empty[T]()
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Conj(values[i])
	}
	return l
}

// Conj returns a new list with value in front of l. l is left unchanged.
func (l *List[T]) Conj(value T) *List[T] {
	return &List[T]{cell: seq.Cons[T](value, l), size: l.size + 1}
}

// Size returns the number of values in the list in constant time.
func (l *List[T]) Size() int {
	return l.size
}

// Empty reports whether the list has no values.
func (l *List[T]) Empty() bool {
	return l.cell == nil
}

// First returns the first value. It panics with seq.ErrEmptySequence on the
// empty list.
func (l *List[T]) First() T {
	if l.cell == nil {
		panic(fmt.Errorf("%w: First called on empty list", seq.ErrEmptySequence))
	}
	return l.cell.First()
}

// Rest returns the list after the first value. The rest of the empty list is
// the list itself.
func (l *List[T]) Rest() seq.Seq[T] {
	return l.Pop()
}

// Pop is Rest with the list type preserved.
func (l *List[T]) Pop() *List[T] {
	if l.cell == nil {
		return l
	}
	return l.cell.Rest().(*List[T])
}

// Values returns the values of the list as a range-over-func iterator.
func (l *List[T]) Values() iter.Seq[T] {
	return seq.Values[T](l)
}

// ToSlice copies the values of the list into a new slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}

// String renders the list as "(v1, v2, ...)".
func (l *List[T]) String() string {
	return seq.String[T](l)
}

// Equal reports whether other is a sequence holding equal values in the same
// order. Lists and lazy sequences with equal contents are equal.
func (l *List[T]) Equal(other any) bool {
	switch o := other.(type) {
	case *List[T]:
		return o != nil && l.size == o.size && seq.Equal[T](l, o)
	case seq.Seq[T]:
		return seq.Equal[T](l, o)
	case seq.Erasable:
		return seq.Equal(l.Erase(), o.Erase())
	}
	return false
}

// Hash returns the same djb2 hash as any sequence with equal contents.
func (l *List[T]) Hash() uint32 {
	return seq.Hash[T](l)
}

// Erase returns the list with its element type erased.
func (l *List[T]) Erase() seq.Seq[any] {
	return seq.Erase[T](l)
}
