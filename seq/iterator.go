package seq

import (
	"iter"

	"github.com/charmingruby/lazyseq/result"
)

// Iterator is a lazy, pull-based iterator.
type Iterator[T any] struct {
	next func() (T, bool)
}

// Next yields the next value. When ok is false, iteration is complete.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// Iter returns an iterator walking s from the front. The iterator is not safe
// for concurrent use, but s itself may be shared freely.
func Iter[T any](s Seq[T]) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			if s.Empty() {
				var zero T
				return zero, false
			}
			v := s.First()
			s = s.Rest()
			return v, true
		},
	}
}

// Values returns s as a range-over-func iterator.
//
// Example:
//
//	for v := range seq.Values(seq.RangeTo(3)) {
//		fmt.Println(v)
//	}
func Values[T any](s Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; !s.Empty(); s = s.Rest() {
			if !yield(s.First()) {
				return
			}
		}
	}
}

// Of returns the finite sequence of the given values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// FromSlice builds a sequence holding the current contents of values. Later
// writes to the slice are not observed.
func FromSlice[T any](values []T) Seq[T] {
	var s Seq[T] = empty[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		s = Cons(values[i], s)
	}
	return s
}

// FromIterator lazily adapts it into a sequence. Values are pulled one at a
// time as the sequence is forced and each is pulled exactly once.
func FromIterator[T any](it Iterator[T]) Seq[T] {
	return Lazy(func() Seq[T] {
		v, ok := it.Next()
		if !ok {
			return empty[T]{}
		}
		return Cons(v, FromIterator(it))
	})
}

// FromIter lazily adapts a range-over-func iterator into a sequence. The
// underlying pull iterator is released once the input is exhausted; a sequence
// that is never walked to its end keeps it alive.
func FromIter[T any](values iter.Seq[T]) Seq[T] {
	next, stop := iter.Pull(values)
	return FromIterator(Iterator[T]{
		next: func() (T, bool) {
			v, ok := next()
			if !ok {
				stop()
			}
			return v, ok
		},
	})
}

// ToSlice forces the finite sequence s and collects its values.
func ToSlice[T any](s Seq[T]) []T {
	out := []T{}
	ForEach(s, func(v T) {
		out = append(out, v)
	})
	return out
}

// TryToSlice behaves like ToSlice but reports a panic raised while forcing s,
// such as a failing generator or mapping function, as an error Result instead.
// Elements whose generator failed stay unevaluated, so a later call retries
// them.
func TryToSlice[T any](s Seq[T]) result.Result[[]T] {
	return result.Catch(func() []T {
		return ToSlice(s)
	})
}
