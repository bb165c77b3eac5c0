// Package option implements a generic Option type for presence/absence
// semantics. Sequence lookups that may come up empty, such as seq.Find,
// seq.Nth and seq.Head, return an Option instead of panicking.
package option

import (
	"errors"
	"fmt"

	"github.com/charmingruby/lazyseq/result"
)

// ErrNone is the panic value of UnsafeGet and the default error of ToResult.
var ErrNone = errors.New("option: missing value")

// Option represents presence or absence of a value of type T. The zero value is
// None. Values are stored inline, which makes Some(nil) valid for nil-capable
// types; use IsSome to tell absence from an explicit nil.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option that wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option for the provided type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk constructs an Option from a value and ok flag, mirroring Go's common
// multi-return patterns (e.g. map lookups).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports true when the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports true when the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value along with a boolean indicating whether it
// was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnsafeGet returns the contained value or panics with ErrNone when the Option
// is None.
func (o Option[T]) UnsafeGet() T {
	if !o.ok {
		panic(ErrNone)
	}
	return o.value
}

// GetOrElse returns the contained value when present, otherwise fallback.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Map transforms the contained value with fn when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains the Option with another Option-valued function.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// ToResult converts the Option into a Result, producing errFactory() when the
// Option is None. A nil factory, or one returning nil, yields ErrNone.
//
// Example:
//
//	res := seq.Find(users, isAdmin).ToResult(func() error { return errNoAdmin })
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	if o.ok {
		return result.Ok(o.value)
	}
	var err error
	if errFactory != nil {
		err = errFactory()
	}
	if err == nil {
		err = ErrNone
	}
	return result.Err[T](err)
}

// String implements fmt.Stringer for debugging.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
