package checked

import (
	"fmt"

	"go.dw1.io/checked/kind"
)

// NonZero is an integer of kind T that is known not to be zero. The zero
// value of NonZero is not valid; obtain one from [ToNonZero].
type NonZero[T kind.Integer] struct {
	v T
}

// ToNonZero returns v as a NonZero, or an error matching [ErrZero] when v is
// zero.
func ToNonZero[T kind.Integer](v T) (NonZero[T], error) {
	var zero T
	if v == zero {
		return NonZero[T]{}, New(ErrZero, "unexpected zero value")
	}

	return NonZero[T]{v: v}, nil
}

// MustNonZero is like ToNonZero but panics if v is zero.
func MustNonZero[T kind.Integer](v T) NonZero[T] {
	n, err := ToNonZero(v)
	if err != nil {
		panic(err)
	}

	return n
}

// Get returns the underlying integer.
func (n NonZero[T]) Get() T {
	return n.v
}

// String formats the underlying integer.
func (n NonZero[T]) String() string {
	return fmt.Sprint(n.v)
}
