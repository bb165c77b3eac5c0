package seq

import (
	"sync"
	"sync/atomic"
)

// Lazy returns a sequence whose contents are produced by gen on first access
// to Empty, First or Rest.
//
// gen must be a pure function of no external state. It runs at most once per
// successful evaluation even when many goroutines force the sequence at the
// same time; every caller observes the same result. Once gen returns, the
// sequence drops its reference to it so captured state can be collected.
//
// A panic raised by gen propagates to the caller that forced the sequence and
// nothing is cached, so the next access runs gen again. A nil result from gen
// is the empty sequence.
//
// Example:
//
//	s := seq.Lazy(func() seq.Seq[int] {
//		return seq.Of(expensive()...)
//	})
func Lazy[T any](gen func() Seq[T]) Seq[T] {
	return &lazy[T]{gen: gen}
}

type lazy[T any] struct {
	value atomic.Pointer[Seq[T]]

	mu  sync.Mutex
	gen func() Seq[T]
}

// step runs the generator at most once and returns its raw result, which may
// itself be lazy.
func (l *lazy[T]) step() Seq[T] {
	if v := l.value.Load(); v != nil {
		return *v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if v := l.value.Load(); v != nil {
		return *v
	}
	s := l.gen()
	if s == nil {
		s = empty[T]{}
	}
	l.value.Store(&s)
	l.gen = nil
	return s
}

// force returns the first non-lazy sequence reachable through generator
// results. Nested lazies are walked in a loop rather than recursively, and the
// resolved sequence replaces the cached one so later calls take one load.
func (l *lazy[T]) force() Seq[T] {
	s := l.step()
	next, ok := s.(*lazy[T])
	if !ok {
		return s
	}
	for ok {
		s = next.step()
		next, ok = s.(*lazy[T])
	}
	l.value.Store(&s)
	return s
}

func (l *lazy[T]) Empty() bool { return l.force().Empty() }

func (l *lazy[T]) First() T { return l.force().First() }

func (l *lazy[T]) Rest() Seq[T] { return l.force().Rest() }

func (l *lazy[T]) String() string { return String[T](l) }

func (l *lazy[T]) Equal(other any) bool { return equalAny[T](l, other) }

func (l *lazy[T]) Hash() uint32 { return Hash[T](l) }

func (l *lazy[T]) Erase() Seq[any] { return Erase[T](l) }
