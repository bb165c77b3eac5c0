package seq_test

import (
	"fmt"

	"github.com/charmingruby/lazyseq/seq"
)

func ExampleLazy() {
	s := seq.Lazy(func() seq.Seq[string] {
		fmt.Println("generating")
		return seq.Of("a", "b")
	})
	fmt.Println("built")
	fmt.Println(s.First())
	fmt.Println(s)
	// Output:
	// built
	// generating
	// a
	// (a, b)
}

func ExampleCycle() {
	s, _ := seq.Take(seq.Cycle(seq.Of("a", "b")), 5)
	fmt.Println(s)
	// Output:
	// (a, b, a, b, a)
}

func ExampleFlatten() {
	nested := seq.Of[any](seq.Of("a", "b"), 0, seq.Of("c", "d"))
	fmt.Println(seq.Flatten(nested))
	// Output:
	// (a, b, 0, c, d)
}

func ExampleFoldRight() {
	letters := seq.Of("a", "b", "c")
	fmt.Println(seq.FoldLeft(letters, "_", func(acc, v string) string { return acc + v }))
	fmt.Println(seq.FoldRight(letters, "_", func(v, acc string) string { return v + acc }))
	// Output:
	// _abc
	// abc_
}

func ExampleRange() {
	fmt.Println(seq.Range(1, 6, 2))
	fmt.Println(seq.RangeTo(3))
	// Output:
	// (1, 3, 5)
	// (0, 1, 2)
}

func ExampleTake_invalid() {
	_, err := seq.Take(seq.Naturals(), -1)
	fmt.Println(err)
	// Output:
	// seq: invalid argument: take count -1 is negative
}
