package kind

import (
	"math/big"
	"math/bits"
	"strconv"
)

// Value is an integer of any kind in sign-and-magnitude form. The magnitude
// is 128 bits wide, which holds both the minimum of [Int128] and the maximum
// of [Uint128]. Zero is never negative.
type Value struct {
	neg    bool
	hi, lo uint64
}

// ValueOf widens x into a Value.
func ValueOf[T Integer](x T) Value {
	switch v := any(x).(type) {
	case int:
		return fromInt64(int64(v))
	case int8:
		return fromInt64(int64(v))
	case int16:
		return fromInt64(int64(v))
	case int32:
		return fromInt64(int64(v))
	case int64:
		return fromInt64(v)
	case I128:
		return fromRaw(v.hi, v.lo, true)
	case uint:
		return fromUint64(uint64(v))
	case uint8:
		return fromUint64(uint64(v))
	case uint16:
		return fromUint64(uint64(v))
	case uint32:
		return fromUint64(uint64(v))
	case uint64:
		return fromUint64(v)
	case U128:
		return fromRaw(v.hi, v.lo, false)
	case uintptr:
		return fromUint64(uint64(v))
	}

	return Value{}
}

// Cast reinterprets v in T, truncating its two's complement form to the width
// of T. It performs no range check; callers pair it with [Check].
func Cast[T Integer](v Value) T {
	hi, lo := v.raw()

	var out any
	switch any(*new(T)).(type) {
	case int:
		out = int(lo) //nolint:gosec // G115: intentional truncation.
	case int8:
		out = int8(lo) //nolint:gosec // G115: intentional truncation.
	case int16:
		out = int16(lo) //nolint:gosec // G115: intentional truncation.
	case int32:
		out = int32(lo) //nolint:gosec // G115: intentional truncation.
	case int64:
		out = int64(lo) //nolint:gosec // G115: intentional truncation.
	case I128:
		out = I128{hi: hi, lo: lo}
	case uint:
		out = uint(lo)
	case uint8:
		out = uint8(lo) //nolint:gosec // G115: intentional truncation.
	case uint16:
		out = uint16(lo) //nolint:gosec // G115: intentional truncation.
	case uint32:
		out = uint32(lo) //nolint:gosec // G115: intentional truncation.
	case uint64:
		out = lo
	case U128:
		out = U128{hi: hi, lo: lo}
	case uintptr:
		out = uintptr(lo)
	}

	return out.(T)
}

func fromInt64(x int64) Value {
	if x < 0 {
		return Value{neg: true, lo: -uint64(x)} //nolint:gosec // G115: magnitude of a negative value.
	}

	return Value{lo: uint64(x)}
}

func fromUint64(x uint64) Value {
	return Value{lo: x}
}

func fromRaw(hi, lo uint64, signed bool) Value {
	if signed && hi>>63 == 1 {
		hi, lo = negate(hi, lo)
		return Value{neg: true, hi: hi, lo: lo}
	}

	return Value{hi: hi, lo: lo}
}

// raw returns the 128-bit two's complement form of v.
func (v Value) raw() (hi, lo uint64) {
	if v.neg {
		return negate(v.hi, v.lo)
	}

	return v.hi, v.lo
}

func negate(hi, lo uint64) (uint64, uint64) {
	lo, borrow := bits.Sub64(0, lo, 0)
	hi, _ = bits.Sub64(0, hi, borrow)

	return hi, lo
}

// Negative reports whether v is below zero.
func (v Value) Negative() bool {
	return v.neg
}

// IsZero reports whether v is zero.
func (v Value) IsZero() bool {
	return v.hi == 0 && v.lo == 0
}

// Cmp compares v and w and returns -1, 0 or +1.
func (v Value) Cmp(w Value) int {
	switch {
	case v.neg && !w.neg:
		return -1
	case !v.neg && w.neg:
		return 1
	}

	c := cmpMagnitude(v, w)
	if v.neg {
		return -c
	}

	return c
}

func cmpMagnitude(v, w Value) int {
	switch {
	case v.hi < w.hi:
		return -1
	case v.hi > w.hi:
		return 1
	case v.lo < w.lo:
		return -1
	case v.lo > w.lo:
		return 1
	}

	return 0
}

// Big returns v as a big.Int.
func (v Value) Big() *big.Int {
	b := new(big.Int).SetUint64(v.hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(v.lo))
	if v.neg {
		b.Neg(b)
	}

	return b
}

// ValueFromBig returns b as a Value. It reports false if the magnitude of b
// does not fit in 128 bits.
func ValueFromBig(b *big.Int) (Value, bool) {
	if b.BitLen() > 128 {
		return Value{}, false
	}

	mag := new(big.Int).Abs(b)
	lo := mag.Uint64()
	hi := mag.Rsh(mag, 64).Uint64()

	return Value{neg: b.Sign() < 0, hi: hi, lo: lo}, true
}

// String returns the decimal representation of v.
func (v Value) String() string {
	if v.hi != 0 {
		return v.Big().String()
	}

	s := strconv.FormatUint(v.lo, 10)
	if v.neg {
		return "-" + s
	}

	return s
}
