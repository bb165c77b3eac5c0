package seq

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/charmingruby/lazyseq/fp"
)

// Map lazily transforms each element using fn. The result has the same length
// as s. fn runs once per element, when that element is first forced.
func Map[A any, B any](s Seq[A], fn func(A) B) Seq[B] {
	return Lazy(func() Seq[B] {
		if s.Empty() {
			return empty[B]{}
		}
		return Cons(fn(s.First()), Map(s.Rest(), fn))
	})
}

// Filter lazily keeps the elements satisfying predicate, preserving order.
// Forcing the result scans s up to the next match, so an infinite s with no
// further match never returns.
func Filter[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return Lazy(func() Seq[T] {
		for cur := s; !cur.Empty(); cur = cur.Rest() {
			if v := cur.First(); predicate(v) {
				return Cons(v, Filter(cur.Rest(), predicate))
			}
		}
		return empty[T]{}
	})
}

// Distinct lazily keeps the first occurrence of every element. The set of seen
// elements belongs to the returned sequence; separate calls never share it.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	return DistinctBy(s, fp.Identity[T])
}

// DistinctBy removes duplicates determined by keySelector, preserving order.
func DistinctBy[T any, K comparable](s Seq[T], keySelector func(T) K) Seq[T] {
	// Only generators of this one chain touch seen, and they run one after
	// another because each node is created by the previous node's generator.
	seen := swiss.NewMap[K, struct{}](8)
	return Filter(s, func(v T) bool {
		key := keySelector(v)
		if seen.Has(key) {
			return false
		}
		seen.Put(key, struct{}{})
		return true
	})
}

// TakeWhile lazily yields the longest prefix of s whose elements satisfy
// predicate. The first failing element is inspected but not yielded.
func TakeWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return Lazy(func() Seq[T] {
		if s.Empty() {
			return empty[T]{}
		}
		v := s.First()
		if !predicate(v) {
			return empty[T]{}
		}
		return Cons(v, TakeWhile(s.Rest(), predicate))
	})
}

// Take lazily yields at most n elements of s. It never forces the element
// after the n-th. A negative n is rejected with ErrInvalidArgument.
func Take[T any](s Seq[T], n int) (Seq[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: take count %d is negative", ErrInvalidArgument, n)
	}
	return take(s, n), nil
}

func take[T any](s Seq[T], n int) Seq[T] {
	return Lazy(func() Seq[T] {
		if n == 0 || s.Empty() {
			return empty[T]{}
		}
		return Cons(s.First(), take(s.Rest(), n-1))
	})
}

// FlatMap maps every element to a sequence and concatenates the results.
func FlatMap[A any, B any](s Seq[A], fn func(A) Seq[B]) Seq[B] {
	return FlattenSafe(Map(s, fn))
}

// Unzip splits a sequence of pairs into the sequence of first components and
// the sequence of second components. Both are lazy views over s.
func Unzip[A any, B any](s Seq[Pair[A, B]]) Pair[Seq[A], Seq[B]] {
	firsts := Map(s, func(p Pair[A, B]) A { return p.First })
	seconds := Map(s, func(p Pair[A, B]) B { return p.Second })
	return Pair[Seq[A], Seq[B]]{First: firsts, Second: seconds}
}
