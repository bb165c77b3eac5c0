// Package result provides a success/error abstraction similar to Go's (T, error).
//
// Example:
//
//	res := seq.TryToSlice(pipeline)
//	values, err := res.Unwrap()
//	_ = values
//
// Catch turns a panicking computation, such as forcing a lazy sequence whose
// generator fails, into an error Result. Combinators uphold the Functor laws
// (see laws_result_test.go).
package result

import (
	"errors"
	"fmt"
)

// ErrPanic marks errors produced by Catch from a recovered panic value that was
// not itself an error.
var ErrPanic = errors.New("result: recovered panic")

// Result represents the outcome of a computation that may succeed with a value
// or fail with an error. It never panics except in Unsafe helpers.
//
// Example:
//
//	res := result.Ok([]int{1, 2, 3})
//	values, err := res.Unwrap()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(values)
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result carrying value.
//
// Example:
//
//	res := result.Ok(200)
//	fmt.Println(res.IsOk()) // true
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. Passing a nil error automatically converts it
// into a descriptive placeholder to avoid silent successes.
//
// Example:
//
//	res := result.Err[int](seq.ErrEmptySequence)
//	_, err := res.Unwrap()
//	fmt.Println(err)
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{err: err}
}

// FromTuple converts a standard Go (value, error) pair to a Result.
//
// Example:
//
//	res := result.FromTuple(seq.Reduce(numbers, add))
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// Catch runs fn and captures a panic raised inside it as an error Result. A
// panic carrying an error is returned as is, so errors.Is keeps working on
// sentinel errors; any other panic value is wrapped in ErrPanic.
//
// Example:
//
//	res := result.Catch(func() int { return seq.Head(s).UnsafeGet() })
func Catch[T any](fn func() T) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				res = Err[T](err)
				return
			}
			res = Err[T](fmt.Errorf("%w: %v", ErrPanic, r))
		}
	}()
	return Ok(fn())
}

// IsOk reports whether the Result represents success.
//
// Example:
//
//	if res.IsOk() {
//		fmt.Println("success")
//	}
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result represents failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error, if any.
//
// Example:
//
//	if err := res.Err(); err != nil {
//		return err
//	}
func (r Result[T]) Err() error {
	return r.err
}

// UnsafeUnwrap returns the underlying value or panics if the Result is an error.
//
// Example:
//
//	values := seq.TryToSlice(s).UnsafeUnwrap()
func (r Result[T]) UnsafeUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Unwrap returns the value and error, mirroring standard Go semantics.
//
// Example:
//
//	value, err := res.Unwrap()
//	if err != nil {
//		return err
//	}
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value when ok, otherwise returns fallback.
//
// Example:
//
//	values := seq.TryToSlice(s).UnwrapOr(nil)
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// Map transforms the value on success.
//
// Example:
//
//	count := result.Map(seq.TryToSlice(s), func(vs []int) int { return len(vs) })
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err == nil {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// String implements fmt.Stringer for debugging.
func (r Result[T]) String() string {
	if r.err == nil {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
