package seq

import (
	"fmt"
	"strings"

	"github.com/xiaq/persistent/hash"

	"github.com/charmingruby/lazyseq/internal/vals"
)

// String renders s as "(e1, e2, ..., en)", or "()" when empty. Elements are
// formatted with fmt.Sprint, so nested sequences and pairs print structurally.
// It forces exactly the elements it prints.
func String[T any](s Seq[T]) string {
	var sb strings.Builder
	sb.WriteByte('(')
	if !s.Empty() {
		fmt.Fprint(&sb, s.First())
		ForEach(s.Rest(), func(v T) {
			sb.WriteString(", ")
			fmt.Fprint(&sb, v)
		})
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal reports whether a and b hold equal elements in the same order. It does
// not matter how either sequence was built. Elements are compared with
// Equal methods when present and == or reflect.DeepEqual otherwise.
func Equal[T any](a, b Seq[T]) bool {
	for {
		ae, be := a.Empty(), b.Empty()
		if ae || be {
			return ae && be
		}
		if !vals.Equal(a.First(), b.First()) {
			return false
		}
		a, b = a.Rest(), b.Rest()
	}
}

// Hash returns the djb2 hash of the elements of s: starting from 5381, each
// element hash h is folded in as acc*33 + h. Equal sequences hash equally.
func Hash[T any](s Seq[T]) uint32 {
	return FoldLeft(s, hash.DJBInit, func(acc uint32, v T) uint32 {
		return hash.DJBCombine(acc, vals.Hash(v))
	})
}

// Erase returns s with its element type erased. Sequences that already hold
// any are returned unchanged.
func Erase[T any](s Seq[T]) Seq[any] {
	if erased, ok := any(s).(Seq[any]); ok {
		return erased
	}
	return Map(s, func(v T) any { return v })
}

// equalAny backs the Equal methods. Sequences of the same element type are
// compared directly; other erasable sequences are compared through their
// erased views.
func equalAny[T any](s Seq[T], other any) bool {
	switch o := other.(type) {
	case Seq[T]:
		return Equal(s, o)
	case Erasable:
		return Equal(Erase(s), o.Erase())
	}
	return false
}
