// Package pipe provides curried forms of the seq operators. Each function fixes
// every argument except the sequence and returns a stage, a plain function
// from sequence to sequence (or to a value for terminal stages), so pipelines
// read left to right with fp.Pipe and fp.Then.
//
// Example:
//
//	top := fp.Pipe(seq.Of(5, 3, 5, 1),
//		pipe.Distinct[int](),
//		pipe.Take[int](2),
//	)
//
// Stages taking a count validate it when the stage is built and panic with an
// error wrapping seq.ErrInvalidArgument if it is negative; call seq.Take and
// seq.Drop directly to get the error as a value.
package pipe

import (
	"fmt"

	"github.com/charmingruby/lazyseq/option"
	"github.com/charmingruby/lazyseq/seq"
)

// Stage transforms a sequence of A into a sequence of B.
type Stage[A any, B any] = func(seq.Seq[A]) seq.Seq[B]

// Map returns a stage applying seq.Map with fn.
func Map[A any, B any](fn func(A) B) Stage[A, B] {
	return func(s seq.Seq[A]) seq.Seq[B] { return seq.Map(s, fn) }
}

// Filter returns a stage applying seq.Filter with predicate.
func Filter[T any](predicate func(T) bool) Stage[T, T] {
	return func(s seq.Seq[T]) seq.Seq[T] { return seq.Filter(s, predicate) }
}

// Distinct returns a stage applying seq.Distinct. Every application gets its
// own seen set.
func Distinct[T comparable]() Stage[T, T] {
	return seq.Distinct[T]
}

// DistinctBy returns a stage applying seq.DistinctBy with keySelector.
func DistinctBy[T any, K comparable](keySelector func(T) K) Stage[T, T] {
	return func(s seq.Seq[T]) seq.Seq[T] { return seq.DistinctBy(s, keySelector) }
}

// TakeWhile returns a stage applying seq.TakeWhile with predicate.
func TakeWhile[T any](predicate func(T) bool) Stage[T, T] {
	return func(s seq.Seq[T]) seq.Seq[T] { return seq.TakeWhile(s, predicate) }
}

// Take returns a stage keeping at most n elements.
func Take[T any](n int) Stage[T, T] {
	mustCount("take", n)
	return func(s seq.Seq[T]) seq.Seq[T] {
		taken, _ := seq.Take(s, n)
		return taken
	}
}

// DropWhile returns a stage applying seq.DropWhile with predicate.
func DropWhile[T any](predicate func(T) bool) Stage[T, T] {
	return func(s seq.Seq[T]) seq.Seq[T] { return seq.DropWhile(s, predicate) }
}

// Drop returns a stage skipping the first n elements.
func Drop[T any](n int) Stage[T, T] {
	mustCount("drop", n)
	return func(s seq.Seq[T]) seq.Seq[T] {
		dropped, _ := seq.Drop(s, n)
		return dropped
	}
}

// Concat returns a stage appending second to its input.
func Concat[T any](second seq.Seq[T]) Stage[T, T] {
	return func(s seq.Seq[T]) seq.Seq[T] { return seq.Concat(s, second) }
}

// Cycle returns a stage applying seq.Cycle.
func Cycle[T any]() Stage[T, T] {
	return seq.Cycle[T]
}

// Reverse returns a stage applying seq.Reverse.
func Reverse[T any]() Stage[T, T] {
	return seq.Reverse[T]
}

// Flatten returns a stage applying seq.Flatten.
func Flatten[T any]() Stage[T, any] {
	return seq.Flatten[T]
}

// FlattenSafe returns a stage applying seq.FlattenSafe.
func FlattenSafe[T any]() Stage[seq.Seq[T], T] {
	return seq.FlattenSafe[T]
}

// FlatMap returns a stage applying seq.FlatMap with fn.
func FlatMap[A any, B any](fn func(A) seq.Seq[B]) Stage[A, B] {
	return func(s seq.Seq[A]) seq.Seq[B] { return seq.FlatMap(s, fn) }
}

// Zip returns a stage pairing its input with second.
func Zip[A any, B any](second seq.Seq[B]) Stage[A, seq.Pair[A, B]] {
	return func(s seq.Seq[A]) seq.Seq[seq.Pair[A, B]] { return seq.Zip(s, second) }
}

// Unzip returns a terminal stage applying seq.Unzip.
func Unzip[A any, B any]() func(seq.Seq[seq.Pair[A, B]]) seq.Pair[seq.Seq[A], seq.Seq[B]] {
	return seq.Unzip[A, B]
}

// Enumerate returns a stage applying seq.Enumerate.
func Enumerate[T any]() Stage[T, seq.Pair[int, T]] {
	return seq.Enumerate[T]
}

// Interleave returns a stage alternating its input with second.
func Interleave[T any](second seq.Seq[T]) Stage[T, T] {
	return func(s seq.Seq[T]) seq.Seq[T] { return seq.Interleave(s, second) }
}

// FoldLeft returns a terminal stage applying seq.FoldLeft.
func FoldLeft[A any, B any](init B, fn func(B, A) B) func(seq.Seq[A]) B {
	return func(s seq.Seq[A]) B { return seq.FoldLeft(s, init, fn) }
}

// FoldRight returns a terminal stage applying seq.FoldRight.
func FoldRight[A any, B any](init B, fn func(A, B) B) func(seq.Seq[A]) B {
	return func(s seq.Seq[A]) B { return seq.FoldRight(s, init, fn) }
}

// Find returns a terminal stage applying seq.Find.
func Find[T any](predicate func(T) bool) func(seq.Seq[T]) option.Option[T] {
	return func(s seq.Seq[T]) option.Option[T] { return seq.Find(s, predicate) }
}

// Any returns a terminal stage applying seq.Any.
func Any[T any](predicate func(T) bool) func(seq.Seq[T]) bool {
	return func(s seq.Seq[T]) bool { return seq.Any(s, predicate) }
}

// All returns a terminal stage applying seq.All.
func All[T any](predicate func(T) bool) func(seq.Seq[T]) bool {
	return func(s seq.Seq[T]) bool { return seq.All(s, predicate) }
}

// Reduce returns a terminal stage applying seq.Reduce.
func Reduce[T any](fn func(T, T) T) func(seq.Seq[T]) (T, error) {
	return func(s seq.Seq[T]) (T, error) { return seq.Reduce(s, fn) }
}

// Min returns a terminal stage applying seq.Min.
func Min[T any](cmp func(a, b T) int) func(seq.Seq[T]) (T, error) {
	return func(s seq.Seq[T]) (T, error) { return seq.Min(s, cmp) }
}

// Max returns a terminal stage applying seq.Max.
func Max[T any](cmp func(a, b T) int) func(seq.Seq[T]) (T, error) {
	return func(s seq.Seq[T]) (T, error) { return seq.Max(s, cmp) }
}

// Nth returns a terminal stage yielding the element at index n.
func Nth[T any](n int) func(seq.Seq[T]) option.Option[T] {
	mustCount("nth", n)
	return func(s seq.Seq[T]) option.Option[T] {
		v, _ := seq.Nth(s, n)
		return v
	}
}

// ForEach returns a terminal stage applying seq.ForEach.
func ForEach[T any](fn func(T)) func(seq.Seq[T]) {
	return func(s seq.Seq[T]) { seq.ForEach(s, fn) }
}

func mustCount(op string, n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: %s count %d is negative", seq.ErrInvalidArgument, op, n))
	}
}
