package seq

import (
	"fmt"

	"github.com/xiaq/persistent/hash"

	"github.com/charmingruby/lazyseq/internal/vals"
)

// Pair represents two related values. Zip, Enumerate and Unzip produce and
// consume pairs.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair, letting the compiler infer both type parameters.
func MakePair[A any, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String renders the pair as "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Equal compares both components structurally.
func (p Pair[A, B]) Equal(other any) bool {
	o, ok := other.(Pair[A, B])
	if !ok {
		return false
	}
	return vals.Equal(p.First, o.First) && vals.Equal(p.Second, o.Second)
}

// Hash combines the hashes of both components with djb2.
func (p Pair[A, B]) Hash() uint32 {
	return hash.DJB(vals.Hash(p.First), vals.Hash(p.Second))
}
