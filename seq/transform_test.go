package seq_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/charmingruby/lazyseq/seq"
)

func TestMapIsLazyAndCallsOncePerElement(t *testing.T) {
	calls := map[int]int{}
	s := seq.Map(seq.Naturals(), func(v int) int {
		calls[v]++
		return v * v
	})
	if len(calls) != 0 {
		t.Fatalf("map ran before forcing: %v", calls)
	}

	first, _ := seq.Take(s, 4)
	for range 3 {
		if diff := cmp.Diff([]int{0, 1, 4, 9}, seq.ToSlice(first)); diff != "" {
			t.Fatalf("mapped values mismatch (-want +got):\n%s", diff)
		}
	}
	if diff := cmp.Diff(map[int]int{0: 1, 1: 1, 2: 1, 3: 1}, calls); diff != "" {
		t.Fatalf("map call counts mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter(t *testing.T) {
	odd := func(v int) bool { return v%2 != 0 }
	got := seq.ToSlice(seq.Filter(seq.RangeBetween(1, 10), odd))
	if diff := cmp.Diff([]int{1, 3, 5, 7, 9}, got); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
	if !seq.Filter(seq.Of(2, 4), odd).Empty() {
		t.Fatalf("filter without matches should be empty")
	}
	if !seq.Filter(seq.Empty[int](), odd).Empty() {
		t.Fatalf("filter of empty should be empty")
	}
}

func TestFilterInfiniteInput(t *testing.T) {
	multiples := seq.Filter(seq.Naturals(), func(v int) bool { return v > 0 && v%1000 == 0 })
	got, _ := seq.Take(multiples, 3)
	if diff := cmp.Diff([]int{1000, 2000, 3000}, seq.ToSlice(got)); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestDistinct(t *testing.T) {
	got := seq.ToSlice(seq.Distinct(seq.Of(3, 1, 3, 2, 1, 4)))
	if diff := cmp.Diff([]int{3, 1, 2, 4}, got); diff != "" {
		t.Fatalf("distinct mismatch (-want +got):\n%s", diff)
	}

	cycled, _ := seq.Take(seq.Distinct(seq.Cycle(seq.Of("a", "b"))), 2)
	if diff := cmp.Diff([]string{"a", "b"}, seq.ToSlice(cycled)); diff != "" {
		t.Fatalf("distinct over cycle mismatch (-want +got):\n%s", diff)
	}
}

func TestDistinctSeenSetIsPerCall(t *testing.T) {
	source := seq.Of(1, 2, 2, 1)
	first := seq.Distinct(source)
	second := seq.Distinct(source)

	for _, s := range []seq.Seq[int]{first, second, first} {
		if diff := cmp.Diff([]int{1, 2}, seq.ToSlice(s)); diff != "" {
			t.Fatalf("distinct mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDistinctBy(t *testing.T) {
	words := seq.Of("Go", "go", "Rust", "GO", "rust", "zig")
	got := seq.ToSlice(seq.DistinctBy(words, strings.ToLower))
	if diff := cmp.Diff([]string{"Go", "Rust", "zig"}, got); diff != "" {
		t.Fatalf("distinctBy mismatch (-want +got):\n%s", diff)
	}
}

func TestTakeWhile(t *testing.T) {
	inspected := 0
	s := seq.TakeWhile(seq.Naturals(), func(v int) bool {
		inspected++
		return v < 3
	})
	if diff := cmp.Diff([]int{0, 1, 2}, seq.ToSlice(s)); diff != "" {
		t.Fatalf("takeWhile mismatch (-want +got):\n%s", diff)
	}
	if inspected != 4 {
		t.Fatalf("expected 4 inspected elements, got %d", inspected)
	}
}

func TestTakeCountsMinimum(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 8} {
		taken, err := seq.Take(seq.RangeTo(5), n)
		if err != nil {
			t.Fatalf("take %d: %v", n, err)
		}
		if got, want := seq.Count(taken), min(n, 5); got != want {
			t.Fatalf("take %d yielded %d elements, want %d", n, got, want)
		}
	}
}

func TestTakeRejectsNegativeCount(t *testing.T) {
	forced := false
	s := seq.Lazy(func() seq.Seq[int] {
		forced = true
		return seq.Of(1)
	})
	if _, err := seq.Take(s, -1); !errors.Is(err, seq.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if forced {
		t.Fatalf("take forced its input while validating")
	}
}

func TestTakeNeverForcesBeyondCount(t *testing.T) {
	forced := false
	tail := seq.Lazy(func() seq.Seq[int] {
		forced = true
		return seq.Of(3)
	})
	taken, _ := seq.Take(seq.Concat(seq.Of(1, 2), tail), 2)
	if diff := cmp.Diff([]int{1, 2}, seq.ToSlice(taken)); diff != "" {
		t.Fatalf("take mismatch (-want +got):\n%s", diff)
	}
	if forced {
		t.Fatalf("take forced the element after the count")
	}

	none, _ := seq.Take(tail, 0)
	if !none.Empty() || forced {
		t.Fatalf("take 0 must be empty without forcing")
	}
}

func TestFlatMap(t *testing.T) {
	s := seq.FlatMap(seq.Of(1, 2, 3), func(v int) seq.Seq[int] {
		return seq.RangeTo(v)
	})
	if diff := cmp.Diff([]int{0, 0, 1, 0, 1, 2}, seq.ToSlice(s)); diff != "" {
		t.Fatalf("flatMap mismatch (-want +got):\n%s", diff)
	}

	nested := seq.FlatMap(seq.Of("ab"), func(s string) seq.Seq[seq.Seq[rune]] {
		return seq.Of(seq.Of([]rune(s)...))
	})
	if seq.Count(nested) != 1 {
		t.Fatalf("flatMap must remove exactly one level")
	}
}

func TestUnzip(t *testing.T) {
	pairs := seq.Zip(seq.Of("a", "b", "c"), seq.Naturals())
	parts := seq.Unzip(pairs)
	if diff := cmp.Diff([]string{"a", "b", "c"}, seq.ToSlice(parts.First)); diff != "" {
		t.Fatalf("first components mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, seq.ToSlice(parts.Second)); diff != "" {
		t.Fatalf("second components mismatch (-want +got):\n%s", diff)
	}
}
