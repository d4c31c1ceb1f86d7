package prim

import (
	"math"
	"math/bits"
	"unsafe"

	"go.dw1.io/checked/kind"
)

// Bits returns the width of T in bits.
func Bits[T kind.Native]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T kind.Native]() bool {
	return ^T(0) < 0
}

// Min returns the smallest value of T.
func Min[T kind.Native]() T {
	if !IsSigned[T]() {
		return 0
	}

	return T(1) << (Bits[T]() - 1)
}

// Max returns the largest value of T.
func Max[T kind.Native]() T {
	return ^Min[T]()
}

// isMinusOne reports whether a signed a is -1; ^T(0) is spelled instead of -1
// because the constant is not representable in the unsigned types.
func isMinusOne[T kind.Native](a T) bool {
	return IsSigned[T]() && a == ^T(0)
}

// Add returns a + b; ok is false on overflow.
func Add[T kind.Native](a, b T) (T, bool) {
	r := a + b
	if IsSigned[T]() {
		if (b > 0 && r < a) || (b < 0 && r > a) {
			return 0, false
		}
	} else if r < a {
		return 0, false
	}

	return r, true
}

// Sub returns a - b; ok is false on overflow.
func Sub[T kind.Native](a, b T) (T, bool) {
	r := a - b
	if IsSigned[T]() {
		if (b > 0 && r > a) || (b < 0 && r < a) {
			return 0, false
		}
	} else if b > a {
		return 0, false
	}

	return r, true
}

// Mul returns a * b; ok is false on overflow.
func Mul[T kind.Native](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	minT := Min[T]()
	if (isMinusOne(a) && b == minT) || (isMinusOne(b) && a == minT) {
		return 0, false
	}

	r := a * b
	if r/b != a {
		return 0, false
	}

	return r, true
}

// divisible reports whether a / b and a % b are defined and representable.
func divisible[T kind.Native](a, b T) bool {
	return b != 0 && !(a == Min[T]() && isMinusOne(b))
}

// Div returns a / b; ok is false for a zero divisor or an overflowing
// quotient.
func Div[T kind.Native](a, b T) (T, bool) {
	if !divisible(a, b) {
		return 0, false
	}

	return a / b, true
}

// Rem returns a % b; ok is false when Div would fail.
func Rem[T kind.Native](a, b T) (T, bool) {
	if !divisible(a, b) {
		return 0, false
	}

	return a % b, true
}

// DivEuclid returns the quotient q such that a = b*q + r with 0 <= r < |b|.
func DivEuclid[T kind.Native](a, b T) (T, bool) {
	if !divisible(a, b) {
		return 0, false
	}

	q := a / b
	if a%b < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}

	return q, true
}

// RemEuclid returns the non-negative remainder r of DivEuclid.
func RemEuclid[T kind.Native](a, b T) (T, bool) {
	if !divisible(a, b) {
		return 0, false
	}

	r := a % b
	if r < 0 {
		if b < 0 {
			r -= b
		} else {
			r += b
		}
	}

	return r, true
}

// Neg returns -a; ok is false for the minimum of T.
func Neg[T kind.Signed](a T) (T, bool) {
	if a == Min[T]() {
		return 0, false
	}

	return -a, true
}

// Abs returns |a|; ok is false for the minimum of T.
func Abs[T kind.Signed](a T) (T, bool) {
	if a == Min[T]() {
		return 0, false
	}
	if a < 0 {
		return -a, true
	}

	return a, true
}

// ILog returns the base-base logarithm of a, rounded down; ok is false
// unless a > 0 and base >= 2.
func ILog[T kind.Native](a, base T) (uint32, bool) {
	if a <= 0 || base < 2 {
		return 0, false
	}

	var n uint32
	for a >= base {
		a /= base
		n++
	}

	return n, true
}

// ILog2 returns the base 2 logarithm of a positive a, rounded down.
func ILog2[T kind.Native](a T) (uint32, bool) {
	if a <= 0 {
		return 0, false
	}

	return uint32(bits.Len64(uint64(a)) - 1), true //nolint:gosec // G115: at most 63.
}

// ILog10 returns the base 10 logarithm of a positive a, rounded down.
func ILog10[T kind.Native](a T) (uint32, bool) {
	if a <= 0 {
		return 0, false
	}

	var n uint32
	for a >= 10 {
		a /= 10
		n++
	}

	return n, true
}

// Shl shifts a left by n bits; only n >= the width of T fails. Bits shifted
// out are discarded.
func Shl[T kind.Native](a T, n uint32) (T, bool) {
	if uint(n) >= Bits[T]() {
		return 0, false
	}

	return a << n, true
}

// Shr shifts a right by n bits, arithmetically for signed T.
func Shr[T kind.Native](a T, n uint32) (T, bool) {
	if uint(n) >= Bits[T]() {
		return 0, false
	}

	return a >> n, true
}

// Pow raises a to exp by repeated squaring. Pow(0, 0) is 1.
func Pow[T kind.Native](a T, exp uint32) (T, bool) {
	result, base := T(1), a
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if result, ok = Mul(result, base); !ok {
				return 0, false
			}
		}

		exp >>= 1
		if exp > 0 {
			if base, ok = Mul(base, base); !ok {
				return 0, false
			}
		}
	}

	return result, true
}

// Isqrt returns the floor of the square root of a non-negative a.
func Isqrt[T kind.Native](a T) (T, bool) {
	if a < 0 {
		return 0, false
	}

	x := uint64(a)
	r := uint64(math.Sqrt(float64(x)))
	// float64 rounding can be off by one either way near 2^64
	for r > 0 && r > x/r {
		r--
	}
	for r+1 <= x/(r+1) {
		r++
	}

	return T(r), true
}

// NextMultipleOf returns the smallest multiple of b that is >= a; ok is
// false for a zero b or on overflow.
func NextMultipleOf[T kind.Unsigned](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}

	r := a % b
	if r == 0 {
		return a, true
	}

	return Add(a, b-r)
}

// NextPowerOfTwo returns the smallest power of two >= a; ok is false on
// overflow.
func NextPowerOfTwo[T kind.Unsigned](a T) (T, bool) {
	if a <= 1 {
		return 1, true
	}

	n := uint(bits.Len64(uint64(a - 1)))
	if n >= Bits[T]() {
		return 0, false
	}

	return T(1) << n, true
}

// AddSigned adds a signed b to an unsigned a.
func AddSigned[U kind.Unsigned, S kind.Signed](a U, b S) (U, bool) {
	if b >= 0 {
		if uint64(b) > uint64(Max[U]()-a) {
			return 0, false
		}

		return a + U(b), true
	}

	mag := -uint64(int64(b)) //nolint:gosec // G115: magnitude of a negative value.
	if mag > uint64(a) {
		return 0, false
	}

	return a - U(mag), true
}

// AddUnsigned adds an unsigned b to a signed a.
func AddUnsigned[S kind.Signed, U kind.Unsigned](a S, b U) (S, bool) {
	// two's complement differences are exact modulo 2^64
	room := uint64(int64(Max[S]())) - uint64(int64(a)) //nolint:gosec // G115: see above.
	if uint64(b) > room {
		return 0, false
	}

	return S(uint64(int64(a)) + uint64(b)), true //nolint:gosec // G115: in range by the check above.
}

// SubUnsigned subtracts an unsigned b from a signed a.
func SubUnsigned[S kind.Signed, U kind.Unsigned](a S, b U) (S, bool) {
	room := uint64(int64(a)) - uint64(int64(Min[S]())) //nolint:gosec // G115: exact modulo 2^64.
	if uint64(b) > room {
		return 0, false
	}

	return S(uint64(int64(a)) - uint64(b)), true //nolint:gosec // G115: in range by the check above.
}
