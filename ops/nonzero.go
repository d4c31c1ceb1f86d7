package ops

import (
	"go.dw1.io/checked"
	"go.dw1.io/checked/internal/prim"
	"go.dw1.io/checked/kind"
)

// lift adapts a primitive on T to one producing a NonZero. The primitives
// used with it cannot turn a non-zero operand into zero without failing.
func lift[T kind.Integer](r T, ok bool) (checked.NonZero[T], bool) {
	if !ok {
		return checked.NonZero[T]{}, false
	}

	n, err := checked.ToNonZero(r)
	return n, err == nil
}

// AddNonZero returns a + b, or an error on overflow.
func AddNonZero[T kind.ExactUnsigned](a checked.NonZero[T], b T) (checked.NonZero[T], error) {
	op := func(a checked.NonZero[T], b T) (checked.NonZero[T], bool) {
		return lift[T](prim.Add(a.Get(), b))
	}

	return binary(a, b, op, infix[checked.NonZero[T], T]("+"))
}

// MulNonZero returns a * b, or an error on overflow.
func MulNonZero[T kind.Exact](a, b checked.NonZero[T]) (checked.NonZero[T], error) {
	op := func(a, b checked.NonZero[T]) (checked.NonZero[T], bool) {
		return lift[T](prim.Mul(a.Get(), b.Get()))
	}

	return binary(a, b, op, infix[checked.NonZero[T], checked.NonZero[T]]("*"))
}

// NegNonZero returns -a, or an error if a is the minimum of T.
func NegNonZero[T kind.ExactSigned](a checked.NonZero[T]) (checked.NonZero[T], error) {
	op := func(a checked.NonZero[T]) (checked.NonZero[T], bool) {
		return lift[T](prim.Neg(a.Get()))
	}

	return unary(a, op, prefix[checked.NonZero[T]]("-"))
}

// AbsNonZero returns |a|, or an error if a is the minimum of T.
func AbsNonZero[T kind.ExactSigned](a checked.NonZero[T]) (checked.NonZero[T], error) {
	op := func(a checked.NonZero[T]) (checked.NonZero[T], bool) {
		return lift[T](prim.Abs(a.Get()))
	}

	return unary(a, op, call1[checked.NonZero[T]](checked.ErrOverflow, "overflow", "abs"))
}

// NextPowerOfTwoNonZero returns the smallest power of two >= a, or an error on
// overflow.
func NextPowerOfTwoNonZero[T kind.ExactUnsigned](a checked.NonZero[T]) (checked.NonZero[T], error) {
	op := func(a checked.NonZero[T]) (checked.NonZero[T], bool) {
		return lift[T](prim.NextPowerOfTwo(a.Get()))
	}

	return unary(a, op, call1[checked.NonZero[T]](checked.ErrOverflow, "overflow", "next_power_of_two"))
}
