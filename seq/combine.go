package seq

// Concat lazily yields every element of a followed by every element of b.
// Neither input is touched until the result is forced.
func Concat[T any](a, b Seq[T]) Seq[T] {
	return Lazy(func() Seq[T] {
		if a.Empty() {
			return b
		}
		return Cons(a.First(), Concat(a.Rest(), b))
	})
}

// Cycle repeats the finite sequence s forever. The cycle of an empty sequence
// is empty.
//
// Each lap after the first reuses the memoized nodes of the first one, so a
// cycle occupies memory proportional to s however far it is walked.
func Cycle[T any](s Seq[T]) Seq[T] {
	var cycled Seq[T]
	cycled = Lazy(func() Seq[T] {
		if s.Empty() {
			return empty[T]{}
		}
		return Concat(s, cycled)
	})
	return cycled
}

// Flatten lazily expands nested sequences of any depth into one sequence of
// their non-sequence elements. An element counts as nested when it is a
// Seq[any] or implements Erasable, so sequences of differing element types
// can be mixed freely. A caller-defined sequence type that is neither is a
// leaf: Flatten yields it as one element instead of expanding it.
func Flatten[T any](s Seq[T]) Seq[any] {
	return flatten(Erase(s))
}

func flatten(s Seq[any]) Seq[any] {
	return Lazy(func() Seq[any] {
		if s.Empty() {
			return empty[any]{}
		}
		if inner, ok := nested(s.First()); ok {
			return Concat(flatten(inner), flatten(s.Rest()))
		}
		return Cons(s.First(), flatten(s.Rest()))
	})
}

func nested(v any) (Seq[any], bool) {
	switch v := v.(type) {
	case Seq[any]:
		return v, true
	case Erasable:
		return v.Erase(), true
	}
	return nil, false
}

// FlattenSafe lazily concatenates a sequence of sequences, removing exactly one
// level of nesting and keeping the element type.
func FlattenSafe[T any](s Seq[Seq[T]]) Seq[T] {
	return Lazy(func() Seq[T] {
		if s.Empty() {
			return empty[T]{}
		}
		return Concat(s.First(), FlattenSafe(s.Rest()))
	})
}

// Zip lazily pairs elements of a and b by position, stopping at the end of the
// shorter input.
func Zip[A any, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	return Lazy(func() Seq[Pair[A, B]] {
		if a.Empty() || b.Empty() {
			return empty[Pair[A, B]]{}
		}
		p := Pair[A, B]{First: a.First(), Second: b.First()}
		return Cons(p, Zip(a.Rest(), b.Rest()))
	})
}

// Enumerate pairs each element of s with its index, starting at 0.
func Enumerate[T any](s Seq[T]) Seq[Pair[int, T]] {
	return Zip(Naturals(), s)
}

// Interleave lazily alternates elements of a and b, starting with a. Once one
// side runs out the remainder of the other follows unchanged.
func Interleave[T any](a, b Seq[T]) Seq[T] {
	return Lazy(func() Seq[T] {
		if a.Empty() {
			return b
		}
		if b.Empty() {
			return a
		}
		return Cons(a.First(), Interleave(b, a.Rest()))
	})
}
