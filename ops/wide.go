package ops

import (
	"go.dw1.io/checked"
	"go.dw1.io/checked/internal/prim"
	"go.dw1.io/checked/kind"
)

// AddWide returns a + b for the 128-bit kinds, or an error on overflow.
func AddWide[T kind.Wide](a, b T) (T, error) {
	return binary(a, b, prim.AddWide[T], infix[T, T]("+"))
}

// SubWide returns a - b for the 128-bit kinds, or an error on overflow.
func SubWide[T kind.Wide](a, b T) (T, error) {
	return binary(a, b, prim.SubWide[T], infix[T, T]("-"))
}

// MulWide returns a * b for the 128-bit kinds, or an error on overflow.
func MulWide[T kind.Wide](a, b T) (T, error) {
	return binary(a, b, prim.MulWide[T], infix[T, T]("*"))
}

// NegWide returns -a, or an error if a is the minimum of [kind.I128].
func NegWide(a kind.I128) (kind.I128, error) {
	return unary(a, prim.NegWide, prefix[kind.I128]("-"))
}

// AbsWide returns |a|, or an error if a is the minimum of [kind.I128].
func AbsWide(a kind.I128) (kind.I128, error) {
	return unary(a, prim.AbsWide, call1[kind.I128](checked.ErrOverflow, "overflow", "abs"))
}

// DivWide is [Div] for the 128-bit kinds.
func DivWide[T kind.Wide](a, b T) (T, error) {
	return binary(a, b, prim.DivWide[T], divideWide(infixExpr[T]("/")))
}

// RemWide is [Rem] for the 128-bit kinds.
func RemWide[T kind.Wide](a, b T) (T, error) {
	return binary(a, b, prim.RemWide[T], divideWide(infixExpr[T]("%")))
}

// DivEuclidWide is [DivEuclid] for the 128-bit kinds.
func DivEuclidWide[T kind.Wide](a, b T) (T, error) {
	return binary(a, b, prim.DivEuclidWide[T], divideWide(callExpr[T]("div_euclid")))
}

// RemEuclidWide is [RemEuclid] for the 128-bit kinds.
func RemEuclidWide[T kind.Wide](a, b T) (T, error) {
	return binary(a, b, prim.RemEuclidWide[T], divideWide(callExpr[T]("rem_euclid")))
}

// ILogWide is [ILog] for the 128-bit kinds.
func ILogWide[T kind.Wide](a, base T) (uint32, error) {
	return binary(a, base, prim.ILogWide[T], func(a, base T) error {
		if kind.ValueOf(base).Cmp(kind.ValueOf(2)) < 0 {
			return call2[T, T](checked.ErrDomain, "base is less than 2", "ilog")(a, base)
		}

		return call2[T, T](checked.ErrDomain, "number is not positive", "ilog")(a, base)
	})
}

// ILog2Wide is [ILog2] for the 128-bit kinds.
func ILog2Wide[T kind.Wide](a T) (uint32, error) {
	return unary(a, prim.ILog2Wide[T], call1[T](checked.ErrDomain, "number is not positive", "ilog2"))
}

// ILog10Wide is [ILog10] for the 128-bit kinds.
func ILog10Wide[T kind.Wide](a T) (uint32, error) {
	return unary(a, prim.ILog10Wide[T], call1[T](checked.ErrDomain, "number is not positive", "ilog10"))
}

// ShlWide is [Shl] for the 128-bit kinds.
func ShlWide[T kind.Wide](a T, n uint32) (T, error) {
	return binary(a, n, prim.ShlWide[T], shiftTooLarge[T]("<<"))
}

// ShrWide is [Shr] for the 128-bit kinds; [kind.I128] shifts arithmetically.
func ShrWide[T kind.Wide](a T, n uint32) (T, error) {
	return binary(a, n, prim.ShrWide[T], shiftTooLarge[T](">>"))
}

// PowWide is [Pow] for the 128-bit kinds.
func PowWide[T kind.Wide](a T, exp uint32) (T, error) {
	return binary(a, exp, prim.PowWide[T], call2[T, uint32](checked.ErrOverflow, "overflow", "pow"))
}

// NextMultipleOfWide is [NextMultipleOf] for [kind.U128].
func NextMultipleOfWide(a, b kind.U128) (kind.U128, error) {
	return binary(a, b, prim.NextMultipleOfWide, func(a, b kind.U128) error {
		if b.IsZero() {
			return call2[kind.U128, kind.U128](checked.ErrDivisionByZero, "multiplier is zero", "next_multiple_of")(a, b)
		}

		return call2[kind.U128, kind.U128](checked.ErrOverflow, "overflow", "next_multiple_of")(a, b)
	})
}

// NextPowerOfTwoWide is [NextPowerOfTwo] for [kind.U128].
func NextPowerOfTwoWide(a kind.U128) (kind.U128, error) {
	return unary(a, prim.NextPowerOfTwoWide, call1[kind.U128](checked.ErrOverflow, "overflow", "next_power_of_two"))
}
