package ops

import (
	"time"

	"go.dw1.io/checked"
	"go.dw1.io/checked/internal/prim"
)

// AddTime returns t+d, or an error if the result is outside the range of
// time.Time.
func AddTime(t time.Time, d time.Duration) (time.Time, error) {
	return binary(t, d, prim.AddTime, infix[time.Time, time.Duration]("+"))
}

// SubTime returns t-d, or an error if the result is outside the range of
// time.Time.
func SubTime(t time.Time, d time.Duration) (time.Time, error) {
	return binary(t, d, prim.SubTime, infix[time.Time, time.Duration]("-"))
}

// MulDuration returns d * n, or an error on overflow. The factor is a plain
// count, so messages render it as a number rather than a duration.
func MulDuration(d time.Duration, n uint32) (time.Duration, error) {
	return binary(d, n, func(d time.Duration, n uint32) (time.Duration, bool) {
		return prim.Mul(d, time.Duration(n))
	}, infix[time.Duration, uint32]("*"))
}

// DivDuration returns d / n, or an error if n is zero.
func DivDuration(d time.Duration, n uint32) (time.Duration, error) {
	return binary(d, n, func(d time.Duration, n uint32) (time.Duration, bool) {
		return prim.Div(d, time.Duration(n))
	}, func(d time.Duration, n uint32) error {
		return checked.Errorf(checked.ErrDivisionByZero, "division by zero: %v / %d", d, n)
	})
}
