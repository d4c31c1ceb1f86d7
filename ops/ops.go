package ops

import (
	"go.dw1.io/checked"
	"go.dw1.io/checked/internal/prim"
	"go.dw1.io/checked/kind"
)

// Add returns a + b, or an error on overflow.
func Add[T kind.Native](a, b T) (T, error) {
	return binary(a, b, prim.Add[T], infix[T, T]("+"))
}

// Sub returns a - b, or an error on overflow.
func Sub[T kind.Native](a, b T) (T, error) {
	return binary(a, b, prim.Sub[T], infix[T, T]("-"))
}

// Mul returns a * b, or an error on overflow.
func Mul[T kind.Native](a, b T) (T, error) {
	return binary(a, b, prim.Mul[T], infix[T, T]("*"))
}

// Neg returns -a, or an error if a is the minimum of T.
func Neg[T kind.Signed](a T) (T, error) {
	return unary(a, prim.Neg[T], prefix[T]("-"))
}

// Abs returns |a|, or an error if a is the minimum of T.
func Abs[T kind.Signed](a T) (T, error) {
	return unary(a, prim.Abs[T], call1[T](checked.ErrOverflow, "overflow", "abs"))
}

// Div returns a / b, or an error if b is zero or the quotient overflows.
func Div[T kind.Native](a, b T) (T, error) {
	return binary(a, b, prim.Div[T], divide(infixExpr[T]("/")))
}

// Rem returns a % b, or an error if b is zero or a / b overflows.
func Rem[T kind.Native](a, b T) (T, error) {
	return binary(a, b, prim.Rem[T], divide(infixExpr[T]("%")))
}

// DivEuclid returns the Euclidean quotient of a and b, or an error if b is
// zero or the quotient overflows.
func DivEuclid[T kind.Native](a, b T) (T, error) {
	return binary(a, b, prim.DivEuclid[T], divide(callExpr[T]("div_euclid")))
}

// RemEuclid returns the non-negative remainder of a and b, or an error if b
// is zero or the quotient overflows.
func RemEuclid[T kind.Native](a, b T) (T, error) {
	return binary(a, b, prim.RemEuclid[T], divide(callExpr[T]("rem_euclid")))
}

// ILog returns the base-base logarithm of a, rounded down. It fails if a is
// not positive or base is less than 2.
func ILog[T kind.Native](a, base T) (uint32, error) {
	return binary(a, base, prim.ILog[T], func(a, base T) error {
		if base < 2 {
			return call2[T, T](checked.ErrDomain, "base is less than 2", "ilog")(a, base)
		}

		return call2[T, T](checked.ErrDomain, "number is not positive", "ilog")(a, base)
	})
}

// ILog2 returns the base 2 logarithm of a, rounded down. It fails if a is not
// positive.
func ILog2[T kind.Native](a T) (uint32, error) {
	return unary(a, prim.ILog2[T], call1[T](checked.ErrDomain, "number is not positive", "ilog2"))
}

// ILog10 returns the base 10 logarithm of a, rounded down. It fails if a is
// not positive.
func ILog10[T kind.Native](a T) (uint32, error) {
	return unary(a, prim.ILog10[T], call1[T](checked.ErrDomain, "number is not positive", "ilog10"))
}

// Shl returns a << n. It fails if n is not less than the width of T; bits
// shifted out of a are discarded, as with the << operator.
func Shl[T kind.Native](a T, n uint32) (T, error) {
	return binary(a, n, prim.Shl[T], shiftTooLarge[T]("<<"))
}

// Shr returns a >> n. It fails if n is not less than the width of T.
func Shr[T kind.Native](a T, n uint32) (T, error) {
	return binary(a, n, prim.Shr[T], shiftTooLarge[T](">>"))
}

func shiftTooLarge[T any](symbol string) func(T, uint32) error {
	return func(a T, n uint32) error {
		return checked.Errorf(checked.ErrDomain, "shift amount is too large: %v %s %d", a, symbol, n)
	}
}

// Pow returns a raised to exp, or an error on overflow.
func Pow[T kind.Native](a T, exp uint32) (T, error) {
	return binary(a, exp, prim.Pow[T], call2[T, uint32](checked.ErrOverflow, "overflow", "pow"))
}

// Isqrt returns the square root of a, rounded down. It fails if a is
// negative.
func Isqrt[T kind.Native](a T) (T, error) {
	return unary(a, prim.Isqrt[T], call1[T](checked.ErrDomain, "number is negative", "isqrt"))
}

// NextMultipleOf returns the smallest multiple of b that is >= a. It fails if
// b is zero or the result overflows.
func NextMultipleOf[T kind.Unsigned](a, b T) (T, error) {
	return binary(a, b, prim.NextMultipleOf[T], func(a, b T) error {
		if b == 0 {
			return call2[T, T](checked.ErrDivisionByZero, "multiplier is zero", "next_multiple_of")(a, b)
		}

		return call2[T, T](checked.ErrOverflow, "overflow", "next_multiple_of")(a, b)
	})
}

// NextPowerOfTwo returns the smallest power of two >= a, or an error on
// overflow.
func NextPowerOfTwo[T kind.Unsigned](a T) (T, error) {
	return unary(a, prim.NextPowerOfTwo[T], call1[T](checked.ErrOverflow, "overflow", "next_power_of_two"))
}

// AddSigned adds a signed b to an unsigned a, failing if the result is
// negative or too large for U.
func AddSigned[U kind.Unsigned, S kind.Signed](a U, b S) (U, error) {
	return binary(a, b, prim.AddSigned[U, S], infix[U, S]("+"))
}

// AddUnsigned adds an unsigned b to a signed a, or fails on overflow.
func AddUnsigned[S kind.Signed, U kind.Unsigned](a S, b U) (S, error) {
	return binary(a, b, prim.AddUnsigned[S, U], infix[S, U]("+"))
}

// SubUnsigned subtracts an unsigned b from a signed a, or fails on overflow.
func SubUnsigned[S kind.Signed, U kind.Unsigned](a S, b U) (S, error) {
	return binary(a, b, prim.SubUnsigned[S, U], infix[S, U]("-"))
}
