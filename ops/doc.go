// Package ops provides checked integer arithmetic.
//
// Every operation that can overflow or is undefined for some operands (add,
// sub, mul, div, rem, their Euclidean forms, neg, abs, pow, shifts, integer
// logarithms and square root, next multiple / power of two) is available as a
// free function returning (result, error):
//
//	sum, err := ops.Add(a, b)
//
// and as a method on the [Int] and [Uint] chains, which stop at the first
// error:
//
//	energy, err := ops.U(velocity).Pow(2).Mul(mass).Div(2).Value()
//
// Failures are [*checked.Error] values whose message embeds the operands, for
// example "overflow: 255 + 1" or "division by zero: 7 / 0". They also match
// [checked.ErrOverflow], [checked.ErrDivisionByZero] or [checked.ErrDomain]
// through errors.Is.
//
// Each operation is defined only where it is meaningful: [Neg] and [Abs] take
// signed integers, [NextMultipleOf] and [NextPowerOfTwo] unsigned ones. Types
// built on integers, such as [time.Duration], are accepted as well; [AddTime]
// and [SubTime] cover [time.Time], and [MulDuration] and [DivDuration] scale a
// duration by a count. The 128-bit kinds [kind.I128] and [kind.U128] have their
// own entry points, [AddWide] through [NextPowerOfTwoWide].
package ops
