package prim

import (
	"math/bits"

	"go.dw1.io/checked/kind"
)

// u128 is the two's complement form of a 128-bit carrier.
type u128 struct {
	hi, lo uint64
}

var (
	minI128  = u128{hi: 1 << 63}
	minusOne = u128{hi: ^uint64(0), lo: ^uint64(0)}
	one      = u128{lo: 1}
)

// split returns the bits of a and whether T is signed.
func split[T kind.Wide](a T) (u128, bool) {
	switch v := any(a).(type) {
	case kind.I128:
		hi, lo := v.Raw()
		return u128{hi: hi, lo: lo}, true
	case kind.U128:
		hi, lo := v.Raw()
		return u128{hi: hi, lo: lo}, false
	}

	return u128{}, false
}

func join[T kind.Wide](x u128) T {
	var out any
	switch any(*new(T)).(type) {
	case kind.I128:
		out = kind.I128FromRaw(x.hi, x.lo)
	case kind.U128:
		out = kind.U128FromRaw(x.hi, x.lo)
	}

	return out.(T)
}

func (x u128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

// negative reports whether the sign bit is set.
func (x u128) negative() bool {
	return x.hi>>63 == 1
}

func (x u128) cmp(y u128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}

	return 0
}

func (x u128) add(y u128) (u128, uint64) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, carry := bits.Add64(x.hi, y.hi, carry)

	return u128{hi: hi, lo: lo}, carry
}

func (x u128) sub(y u128) (u128, uint64) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, borrow := bits.Sub64(x.hi, y.hi, borrow)

	return u128{hi: hi, lo: lo}, borrow
}

func (x u128) negate() u128 {
	r, _ := u128{}.sub(x)
	return r
}

// magnitude returns |x|; the magnitude of the signed minimum is 2^127.
func (x u128) magnitude(signed bool) u128 {
	if signed && x.negative() {
		return x.negate()
	}

	return x
}

func (x u128) not() u128 {
	return u128{hi: ^x.hi, lo: ^x.lo}
}

func (x u128) shl(n uint) u128 {
	switch {
	case n >= 128:
		return u128{}
	case n >= 64:
		return u128{hi: x.lo << (n - 64)}
	case n == 0:
		return x
	}

	return u128{hi: x.hi<<n | x.lo>>(64-n), lo: x.lo << n}
}

func (x u128) shr(n uint) u128 {
	switch {
	case n >= 128:
		return u128{}
	case n >= 64:
		return u128{lo: x.hi >> (n - 64)}
	case n == 0:
		return x
	}

	return u128{hi: x.hi >> n, lo: x.lo>>n | x.hi<<(64-n)}
}

// sar shifts right, copying the sign bit.
func (x u128) sar(n uint) u128 {
	if !x.negative() {
		return x.shr(n)
	}

	return x.not().shr(n).not()
}

func (x u128) bitLen() int {
	if x.hi != 0 {
		return 64 + bits.Len64(x.hi)
	}

	return bits.Len64(x.lo)
}

// mul is the unsigned product; ok is false if it needs more than 128 bits.
func (x u128) mul(y u128) (u128, bool) {
	if x.hi != 0 && y.hi != 0 {
		return u128{}, false
	}

	hi, lo := bits.Mul64(x.lo, y.lo)
	h1, l1 := bits.Mul64(x.hi, y.lo)
	h2, l2 := bits.Mul64(x.lo, y.hi)
	if h1 != 0 || h2 != 0 {
		return u128{}, false
	}

	hi, c1 := bits.Add64(hi, l1, 0)
	hi, c2 := bits.Add64(hi, l2, 0)
	if c1 != 0 || c2 != 0 {
		return u128{}, false
	}

	return u128{hi: hi, lo: lo}, true
}

// divmod is the unsigned quotient and remainder; y must not be zero.
func (x u128) divmod(y u128) (q, r u128) {
	if y.hi == 0 {
		var rhi uint64
		if x.hi >= y.lo {
			q.hi, rhi = x.hi/y.lo, x.hi%y.lo
		} else {
			rhi = x.hi
		}
		q.lo, r.lo = bits.Div64(rhi, x.lo, y.lo)

		return q, r
	}

	// estimate the quotient from the top 64 bits of the normalized divisor;
	// the estimate is exact or one too small
	n := uint(bits.LeadingZeros64(y.hi))
	v := y.shl(n)
	u := x.shr(1)
	tq, _ := bits.Div64(u.hi, u.lo, v.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}

	q = u128{lo: tq}
	p, _ := q.mul(y)
	r, _ = x.sub(p)
	if r.cmp(y) >= 0 {
		q, _ = q.add(one)
		r, _ = r.sub(y)
	}

	return q, r
}

// mulWide is the checked product in the signedness of T.
func mulWide(x, y u128, signed bool) (u128, bool) {
	if !signed {
		return x.mul(y)
	}

	p, ok := x.magnitude(true).mul(y.magnitude(true))
	if !ok {
		return u128{}, false
	}

	if x.negative() != y.negative() {
		// the magnitude of the minimum is the only one with the sign bit set
		if p.negative() && p != minI128 {
			return u128{}, false
		}

		return p.negate(), true
	}
	if p.negative() {
		return u128{}, false
	}

	return p, true
}

// divWide is truncated division in the signedness of T.
func divWide(x, y u128, signed bool) (q, r u128, ok bool) {
	if y.isZero() {
		return u128{}, u128{}, false
	}
	if !signed {
		q, r = x.divmod(y)
		return q, r, true
	}
	if x == minI128 && y == minusOne {
		return u128{}, u128{}, false
	}

	q, r = x.magnitude(true).divmod(y.magnitude(true))
	if x.negative() != y.negative() {
		q = q.negate()
	}
	if x.negative() {
		r = r.negate()
	}

	return q, r, true
}

// positive reports whether x is greater than zero.
func positive(x u128, signed bool) bool {
	return !x.isZero() && !(signed && x.negative())
}

// AddWide returns a + b for the 128-bit kinds.
func AddWide[T kind.Wide](a, b T) (T, bool) {
	x, signed := split(a)
	y, _ := split(b)

	r, carry := x.add(y)
	if signed {
		if x.negative() == y.negative() && r.negative() != x.negative() {
			return *new(T), false
		}
	} else if carry != 0 {
		return *new(T), false
	}

	return join[T](r), true
}

// SubWide returns a - b for the 128-bit kinds.
func SubWide[T kind.Wide](a, b T) (T, bool) {
	x, signed := split(a)
	y, _ := split(b)

	r, borrow := x.sub(y)
	if signed {
		if x.negative() != y.negative() && r.negative() != x.negative() {
			return *new(T), false
		}
	} else if borrow != 0 {
		return *new(T), false
	}

	return join[T](r), true
}

// MulWide returns a * b for the 128-bit kinds.
func MulWide[T kind.Wide](a, b T) (T, bool) {
	x, signed := split(a)
	y, _ := split(b)

	r, ok := mulWide(x, y, signed)
	if !ok {
		return *new(T), false
	}

	return join[T](r), true
}

// DivWide returns a / b truncated toward zero.
func DivWide[T kind.Wide](a, b T) (T, bool) {
	x, signed := split(a)
	y, _ := split(b)

	q, _, ok := divWide(x, y, signed)
	if !ok {
		return *new(T), false
	}

	return join[T](q), true
}

// RemWide returns a % b, which has the sign of a.
func RemWide[T kind.Wide](a, b T) (T, bool) {
	x, signed := split(a)
	y, _ := split(b)

	_, r, ok := divWide(x, y, signed)
	if !ok {
		return *new(T), false
	}

	return join[T](r), true
}

// DivEuclidWide returns the quotient q such that a = b*q + r with
// 0 <= r < |b|.
func DivEuclidWide[T kind.Wide](a, b T) (T, bool) {
	x, signed := split(a)
	y, _ := split(b)

	q, r, ok := divWide(x, y, signed)
	if !ok {
		return *new(T), false
	}
	if signed && r.negative() {
		if y.negative() {
			q, _ = q.add(one)
		} else {
			q, _ = q.sub(one)
		}
	}

	return join[T](q), true
}

// RemEuclidWide returns the non-negative remainder of DivEuclidWide.
func RemEuclidWide[T kind.Wide](a, b T) (T, bool) {
	x, signed := split(a)
	y, _ := split(b)

	_, r, ok := divWide(x, y, signed)
	if !ok {
		return *new(T), false
	}
	if signed && r.negative() {
		r, _ = r.add(y.magnitude(true))
	}

	return join[T](r), true
}

// NegWide returns -a, failing for the minimum of I128.
func NegWide(a kind.I128) (kind.I128, bool) {
	x, _ := split(a)
	if x == minI128 {
		return kind.I128{}, false
	}

	return join[kind.I128](x.negate()), true
}

// AbsWide returns |a|, failing for the minimum of I128.
func AbsWide(a kind.I128) (kind.I128, bool) {
	x, _ := split(a)
	if x == minI128 {
		return kind.I128{}, false
	}

	return join[kind.I128](x.magnitude(true)), true
}

// ILogWide returns the base-base logarithm of a, rounded down. a must be
// positive and base at least 2.
func ILogWide[T kind.Wide](a, base T) (uint32, bool) {
	x, signed := split(a)
	b, _ := split(base)
	if !positive(x, signed) || !positive(b, signed) || b.cmp(u128{lo: 2}) < 0 {
		return 0, false
	}

	var n uint32
	for x.cmp(b) >= 0 {
		x, _ = x.divmod(b)
		n++
	}

	return n, true
}

// ILog2Wide returns the base 2 logarithm of a positive a, rounded down.
func ILog2Wide[T kind.Wide](a T) (uint32, bool) {
	x, signed := split(a)
	if !positive(x, signed) {
		return 0, false
	}

	return uint32(x.bitLen() - 1), true //nolint:gosec // G115: at most 127.
}

// ILog10Wide returns the base 10 logarithm of a positive a, rounded down.
func ILog10Wide[T kind.Wide](a T) (uint32, bool) {
	x, signed := split(a)
	if !positive(x, signed) {
		return 0, false
	}

	ten := u128{lo: 10}
	var n uint32
	for x.cmp(ten) >= 0 {
		x, _ = x.divmod(ten)
		n++
	}

	return n, true
}

// ShlWide shifts a left by n bits; only n >= 128 fails.
func ShlWide[T kind.Wide](a T, n uint32) (T, bool) {
	if n >= 128 {
		return *new(T), false
	}

	x, _ := split(a)
	return join[T](x.shl(uint(n))), true
}

// ShrWide shifts a right by n bits, arithmetically for I128.
func ShrWide[T kind.Wide](a T, n uint32) (T, bool) {
	if n >= 128 {
		return *new(T), false
	}

	x, signed := split(a)
	if signed {
		return join[T](x.sar(uint(n))), true
	}

	return join[T](x.shr(uint(n))), true
}

// PowWide raises a to exp by repeated squaring.
func PowWide[T kind.Wide](a T, exp uint32) (T, bool) {
	base, signed := split(a)
	result := one
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if result, ok = mulWide(result, base, signed); !ok {
				return *new(T), false
			}
		}

		exp >>= 1
		if exp > 0 {
			if base, ok = mulWide(base, base, signed); !ok {
				return *new(T), false
			}
		}
	}

	return join[T](result), true
}

// NextMultipleOfWide returns the smallest multiple of b that is >= a.
func NextMultipleOfWide(a, b kind.U128) (kind.U128, bool) {
	x, _ := split(a)
	y, _ := split(b)
	if y.isZero() {
		return kind.U128{}, false
	}

	_, r := x.divmod(y)
	if r.isZero() {
		return a, true
	}

	gap, _ := y.sub(r)
	sum, carry := x.add(gap)
	if carry != 0 {
		return kind.U128{}, false
	}

	return join[kind.U128](sum), true
}

// NextPowerOfTwoWide returns the smallest power of two >= a.
func NextPowerOfTwoWide(a kind.U128) (kind.U128, bool) {
	x, _ := split(a)
	if x.cmp(one) <= 0 {
		return join[kind.U128](one), true
	}

	prev, _ := x.sub(one)
	n := prev.bitLen()
	if n >= 128 {
		return kind.U128{}, false
	}

	return join[kind.U128](one.shl(uint(n))), true
}
