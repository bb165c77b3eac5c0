package seq

import "math"

// Iterate returns the infinite sequence initial, fn(initial), fn(fn(initial)),
// and so on. fn is applied only when the element it produces is forced.
func Iterate[T any](initial T, fn func(T) T) Seq[T] {
	return Lazy(func() Seq[T] {
		return iterateFrom(initial, fn)
	})
}

func iterateFrom[T any](value T, fn func(T) T) Seq[T] {
	return Cons(value, Lazy(func() Seq[T] {
		return iterateFrom(fn(value), fn)
	}))
}

// Range returns start, start+step, start+2*step, ... for as long as the value
// is below end. The sequence stops early instead of overflowing int.
//
// Range does not validate step: with end > start and step <= 0 the sequence
// never ends.
func Range(start, end, step int) Seq[int] {
	return Lazy(func() Seq[int] {
		if start >= end {
			return empty[int]{}
		}
		next := start + step
		if step > 0 && next < start {
			return Cons(start, Empty[int]())
		}
		return Cons(start, Range(next, end, step))
	})
}

// RangeTo returns 0, 1, ..., end-1.
func RangeTo(end int) Seq[int] {
	return Range(0, end, 1)
}

// RangeBetween returns start, start+1, ..., end-1.
func RangeBetween(start, end int) Seq[int] {
	return Range(start, end, 1)
}

// Naturals returns 0, 1, 2, ... up to math.MaxInt-1.
func Naturals() Seq[int] {
	return Range(0, math.MaxInt, 1)
}
