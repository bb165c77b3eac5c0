package seq_test

import (
	"slices"
	"testing"
	"testing/quick"

	"github.com/charmingruby/lazyseq/seq"
)

func TestFunctorLaws(t *testing.T) {
	identity := func(values []int) bool {
		s := seq.FromSlice(values)
		return seq.Equal(seq.Map(s, func(v int) int { return v }), s)
	}
	if err := quick.Check(identity, nil); err != nil {
		t.Fatalf("identity law failed: %v", err)
	}

	f := func(v int) int { return v*3 + 1 }
	g := func(v int) int { return v - 7 }
	composition := func(values []int) bool {
		s := seq.FromSlice(values)
		left := seq.Map(seq.Map(s, f), g)
		right := seq.Map(s, func(v int) int { return g(f(v)) })
		return seq.Equal(left, right)
	}
	if err := quick.Check(composition, nil); err != nil {
		t.Fatalf("composition law failed: %v", err)
	}
}

func TestStructuralProperties(t *testing.T) {
	roundTrip := func(values []int) bool {
		s := seq.FromSlice(values)
		return seq.Equal(seq.Reverse(seq.Reverse(s)), s)
	}
	if err := quick.Check(roundTrip, nil); err != nil {
		t.Fatalf("reverse round trip failed: %v", err)
	}

	hashAgrees := func(values []string) bool {
		eager := seq.FromSlice(values)
		lazy := seq.Concat(seq.Empty[string](), seq.Map(eager, func(s string) string { return s }))
		return seq.Equal(eager, lazy) && seq.Hash(eager) == seq.Hash(lazy)
	}
	if err := quick.Check(hashAgrees, nil); err != nil {
		t.Fatalf("hash agreement failed: %v", err)
	}

	takeDrop := func(values []int, n uint8) bool {
		s := seq.FromSlice(values)
		head, _ := seq.Take(s, int(n))
		tail, _ := seq.Drop(s, int(n))
		return seq.Equal(seq.Concat(head, tail), s)
	}
	if err := quick.Check(takeDrop, nil); err != nil {
		t.Fatalf("take/drop split failed: %v", err)
	}

	toSlice := func(values []int) bool {
		return slices.Equal(seq.ToSlice(seq.FromSlice(values)), values)
	}
	if err := quick.Check(toSlice, nil); err != nil {
		t.Fatalf("slice round trip failed: %v", err)
	}
}
