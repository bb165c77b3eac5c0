// Package vals implements structural equality and hashing for arbitrary
// element values stored in sequences.
package vals

import (
	"math"
	"reflect"

	"github.com/xiaq/persistent/hash"
)

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value. Two equal values must have
	// the same hash code.
	Equal(other any) bool
}

// Hasher wraps the Hash method.
type Hasher interface {
	// Hash computes the hash code of the receiver.
	Hash() uint32
}

// Equal returns whether two values are equal. Values implementing Equaler
// decide for themselves; comparable values of the same dynamic type use ==;
// everything else falls back to reflect.DeepEqual.
func Equal(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if e, ok := x.(Equaler); ok {
		return e.Equal(y)
	}
	tx := reflect.TypeOf(x)
	if tx != reflect.TypeOf(y) {
		return false
	}
	if isScalar(tx.Kind()) {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

// Hash returns the 32-bit hash of a value. It is implemented for booleans,
// numbers, strings and types satisfying Hasher. For other values it returns 0,
// which is still consistent with Equal.
func Hash(v any) uint32 {
	switch v := v.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case int:
		return hash.UInt64(uint64(v))
	case int8:
		return hash.UInt32(uint32(v))
	case int16:
		return hash.UInt32(uint32(v))
	case int32:
		return hash.UInt32(uint32(v))
	case int64:
		return hash.UInt64(uint64(v))
	case uint:
		return hash.UInt64(uint64(v))
	case uint8:
		return hash.UInt32(uint32(v))
	case uint16:
		return hash.UInt32(uint32(v))
	case uint32:
		return hash.UInt32(v)
	case uint64:
		return hash.UInt64(v)
	case uintptr:
		return hash.UIntPtr(v)
	case float32:
		return hashFloat(float64(v))
	case float64:
		return hashFloat(v)
	case string:
		return hash.String(v)
	case Hasher:
		return v.Hash()
	default:
		return 0
	}
}

// hashFloat folds -0 onto +0 so that values equal under == hash equally.
func hashFloat(f float64) uint32 {
	if f == 0 {
		f = 0
	}
	return hash.UInt64(math.Float64bits(f))
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}
