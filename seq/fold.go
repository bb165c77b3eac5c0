package seq

import (
	"fmt"

	"github.com/charmingruby/lazyseq/option"
)

// FoldLeft reduces s from left to right, computing
// fn(...fn(fn(init, e1), e2)..., en). It loops instead of recursing, so any
// finite length is fine.
func FoldLeft[A any, B any](s Seq[A], init B, fn func(B, A) B) B {
	acc := init
	for ; !s.Empty(); s = s.Rest() {
		acc = fn(acc, s.First())
	}
	return acc
}

// Reduce folds s using its first element as the initial value. It returns
// ErrEmptySequence when s is empty.
func Reduce[T any](s Seq[T], fn func(T, T) T) (T, error) {
	if s.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: nothing to reduce", ErrEmptySequence)
	}
	return FoldLeft(s.Rest(), s.First(), fn), nil
}

// FoldRight reduces s from right to left, computing
// fn(e1, fn(e2, ...fn(en, init))).
//
// FoldRight recurses once per element, so very long sequences can exhaust the
// goroutine stack; an infinite sequence never returns.
func FoldRight[A any, B any](s Seq[A], init B, fn func(A, B) B) B {
	if s.Empty() {
		return init
	}
	return fn(s.First(), FoldRight(s.Rest(), init, fn))
}

// ForEach calls fn with every element of s in order.
func ForEach[T any](s Seq[T], fn func(T)) {
	FoldLeft(s, struct{}{}, func(unit struct{}, v T) struct{} {
		fn(v)
		return unit
	})
}

// Reverse returns the elements of the finite sequence s in reverse order.
func Reverse[T any](s Seq[T]) Seq[T] {
	return FoldLeft(s, Empty[T](), func(acc Seq[T], v T) Seq[T] {
		return Cons(v, acc)
	})
}

// Count returns the number of elements in the finite sequence s.
func Count[T any](s Seq[T]) int {
	return FoldLeft(s, 0, func(n int, _ T) int { return n + 1 })
}

// Head returns the first element of s, or None when s is empty.
func Head[T any](s Seq[T]) option.Option[T] {
	if s.Empty() {
		return option.None[T]()
	}
	return option.Some(s.First())
}

// Find returns the first element satisfying predicate, stopping as soon as
// one is found. It returns None when there is none, including on empty input.
func Find[T any](s Seq[T], predicate func(T) bool) option.Option[T] {
	for ; !s.Empty(); s = s.Rest() {
		if v := s.First(); predicate(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

// Any reports whether any element satisfies predicate.
func Any[T any](s Seq[T], predicate func(T) bool) bool {
	return Find(s, predicate).IsSome()
}

// All reports whether all elements satisfy predicate. It is true for the
// empty sequence.
func All[T any](s Seq[T], predicate func(T) bool) bool {
	return Find(s, func(v T) bool { return !predicate(v) }).IsNone()
}

// Min returns the smallest element according to cmp, which follows the
// cmp.Compare convention. Among equal elements the earliest wins. It returns
// ErrEmptySequence when s is empty.
func Min[T any](s Seq[T], cmp func(a, b T) int) (T, error) {
	return extreme(s, func(v, best T) bool { return cmp(v, best) < 0 })
}

// Max returns the largest element according to cmp. Among equal elements the
// earliest wins. It returns ErrEmptySequence when s is empty.
func Max[T any](s Seq[T], cmp func(a, b T) int) (T, error) {
	return extreme(s, func(v, best T) bool { return cmp(v, best) > 0 })
}

func extreme[T any](s Seq[T], better func(v, best T) bool) (T, error) {
	if s.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: no extreme of empty sequence", ErrEmptySequence)
	}
	best := s.First()
	for s = s.Rest(); !s.Empty(); s = s.Rest() {
		if v := s.First(); better(v, best) {
			best = v
		}
	}
	return best, nil
}

// DropWhile skips the longest prefix whose elements satisfy predicate and
// returns what remains, untouched. The prefix is forced immediately.
func DropWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	for !s.Empty() && predicate(s.First()) {
		s = s.Rest()
	}
	return s
}

// Drop skips the first n elements of s, or all of them when s is shorter. A
// negative n is rejected with ErrInvalidArgument.
func Drop[T any](s Seq[T], n int) (Seq[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: drop count %d is negative", ErrInvalidArgument, n)
	}
	for ; n > 0 && !s.Empty(); n-- {
		s = s.Rest()
	}
	return s, nil
}

// Nth returns the element at index n, or None when s is shorter. A negative n
// is rejected with ErrInvalidArgument.
func Nth[T any](s Seq[T], n int) (option.Option[T], error) {
	rest, err := Drop(s, n)
	if err != nil {
		return option.None[T](), err
	}
	return Head(rest), nil
}
