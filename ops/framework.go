package ops

import (
	"fmt"

	"go.dw1.io/checked"
	"go.dw1.io/checked/kind"
)

// unary runs a partial primitive and reports its failure with fail.
func unary[A, R any](a A, op func(A) (R, bool), fail func(A) error) (R, error) {
	r, ok := op(a)
	if !ok {
		var zero R
		return zero, fail(a)
	}

	return r, nil
}

// binary runs a partial primitive and reports its failure with fail.
func binary[A, B, R any](a A, b B, op func(A, B) (R, bool), fail func(A, B) error) (R, error) {
	r, ok := op(a, b)
	if !ok {
		var zero R
		return zero, fail(a, b)
	}

	return r, nil
}

// infix reports "overflow: a <symbol> b".
func infix[A, B any](symbol string) func(A, B) error {
	return func(a A, b B) error {
		return checked.Errorf(checked.ErrOverflow, "overflow: %v %s %v", a, symbol, b)
	}
}

// prefix reports "overflow: <symbol>a".
func prefix[A any](symbol string) func(A) error {
	return func(a A) error {
		return checked.Errorf(checked.ErrOverflow, "overflow: %s%v", symbol, a)
	}
}

// call1 reports "<reason>: name(a)".
func call1[A any](cause error, reason, name string) func(A) error {
	return func(a A) error {
		return checked.Errorf(cause, "%s: %s(%v)", reason, name, a)
	}
}

// call2 reports "<reason>: name(a, b)".
func call2[A, B any](cause error, reason, name string) func(A, B) error {
	return func(a A, b B) error {
		return checked.Errorf(cause, "%s: %s(%v, %v)", reason, name, a, b)
	}
}

// divide tells a zero divisor apart from an overflowing quotient. expr renders
// the operation from its operands.
func divide[T kind.Native](expr func(a, b T) string) func(T, T) error {
	return divideBy(func(b T) bool { return b == 0 }, expr)
}

func divideWide[T kind.Wide](expr func(a, b T) string) func(T, T) error {
	return divideBy(func(b T) bool { return b.IsZero() }, expr)
}

func divideBy[T any](isZero func(T) bool, expr func(a, b T) string) func(T, T) error {
	return func(a, b T) error {
		if isZero(b) {
			return checked.New(checked.ErrDivisionByZero, "division by zero: "+expr(a, b))
		}

		return checked.New(checked.ErrOverflow, "overflow: "+expr(a, b))
	}
}

func infixExpr[T any](symbol string) func(a, b T) string {
	return func(a, b T) string {
		return fmt.Sprintf("%v %s %v", a, symbol, b)
	}
}

func callExpr[T any](name string) func(a, b T) string {
	return func(a, b T) string {
		return fmt.Sprintf("%s(%v, %v)", name, a, b)
	}
}
