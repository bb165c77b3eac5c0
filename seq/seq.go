// Package seq implements immutable, possibly infinite, lazily evaluated linked
// sequences and the operators that transform them.
//
// A sequence exposes exactly three facts: whether it is empty, its first
// element and the sequence of remaining elements. Operators such as Map,
// Filter or Concat never touch an element until a caller asks for it, and
// because Lazy memoizes, walking the same sequence twice never recomputes it.
//
// Example:
//
//	evens := seq.Filter(seq.Naturals(), func(n int) bool { return n%2 == 0 })
//	firstFive, _ := seq.Take(evens, 5)
//	fmt.Println(firstFive) // (0, 2, 4, 6, 8)
//
// Structural helpers (String, Equal, Hash, Count, ToSlice) walk the whole
// sequence and therefore never return on infinite input.
package seq

import "fmt"

// Seq is an immutable ordered view over values of type T.
//
// First panics with ErrEmptySequence when Empty reports true; Rest of the empty
// sequence is the empty sequence itself.
type Seq[T any] interface {
	Empty() bool
	First() T
	Rest() Seq[T]
}

// Erasable is implemented by sequences that can present themselves with their
// element type erased. Every sequence built by this module implements it,
// which lets Flatten and Equal see through nesting of differently typed
// sequences. Sequence types defined outside this package should implement it
// too, usually as a call to Erase; otherwise Flatten treats them as leaves and
// Equal only matches them against sequences of the same element type.
type Erasable interface {
	Erase() Seq[any]
}

// Empty returns the empty sequence. All empty sequences are equal, whatever
// their element type.
func Empty[T any]() Seq[T] {
	return empty[T]{}
}

// Cons returns the sequence whose first element is value followed by rest. A
// nil rest is the empty sequence.
func Cons[T any](value T, rest Seq[T]) Seq[T] {
	if rest == nil {
		rest = empty[T]{}
	}
	return &cons[T]{first: value, rest: rest}
}

// Repeat returns the infinite sequence value, value, value, ...
func Repeat[T any](value T) Seq[T] {
	return repeat[T]{value: value}
}

type empty[T any] struct{}

func (empty[T]) Empty() bool { return true }

func (empty[T]) First() T {
	panic(fmt.Errorf("%w: First called on empty sequence", ErrEmptySequence))
}

func (e empty[T]) Rest() Seq[T] { return e }

func (empty[T]) String() string { return "()" }

func (e empty[T]) Equal(other any) bool { return equalAny[T](e, other) }

func (e empty[T]) Hash() uint32 { return Hash[T](e) }

func (empty[T]) Erase() Seq[any] { return empty[any]{} }

type cons[T any] struct {
	first T
	rest  Seq[T]
}

func (*cons[T]) Empty() bool { return false }

func (c *cons[T]) First() T { return c.first }

func (c *cons[T]) Rest() Seq[T] { return c.rest }

func (c *cons[T]) String() string { return String[T](c) }

func (c *cons[T]) Equal(other any) bool { return equalAny[T](c, other) }

func (c *cons[T]) Hash() uint32 { return Hash[T](c) }

func (c *cons[T]) Erase() Seq[any] { return Erase[T](c) }

type repeat[T any] struct {
	value T
}

func (repeat[T]) Empty() bool { return false }

func (r repeat[T]) First() T { return r.value }

func (r repeat[T]) Rest() Seq[T] { return r }

func (r repeat[T]) String() string { return String[T](r) }

func (r repeat[T]) Equal(other any) bool { return equalAny[T](r, other) }

func (r repeat[T]) Hash() uint32 { return Hash[T](r) }

func (r repeat[T]) Erase() Seq[any] {
	return Repeat[any](r.value)
}
