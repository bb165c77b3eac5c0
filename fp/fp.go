// Package fp provides lightweight functional composition helpers for Go.
//
// They are the glue for sequence pipelines: stages from the pipe package are
// plain functions, so Pipe runs them over a value and Then joins stages whose
// element types differ.
//
// Example:
//
//	firstSquares := fp.Pipe(seq.Naturals(),
//		pipe.Map(func(n int) int { return n * n }),
//		pipe.Take[int](3),
//	)
package fp

// Identity returns the supplied value unchanged.
//
// Example:
//
//	unique := seq.DistinctBy(words, fp.Identity[string])
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	deferred := seq.Lazy(fp.Constant(seq.Of(1, 2, 3)))
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies a sequence of functions to value, left to right. All functions
// must accept and return the same type.
//
// Example:
//
//	result := Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose composes functions in right-to-left order.
//
// Example:
//
//	fn := Compose(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5) // 16
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Then returns the function applying f and then g, allowing the intermediate
// type to differ from both ends.
//
// Example:
//
//	lengths := Then(
//		pipe.Map(func(s string) int { return len(s) }),
//		pipe.Filter(func(n int) bool { return n > 2 }),
//	)
func Then[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
