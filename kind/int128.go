package kind

// I128 is a signed 128-bit integer in two's complement, stored as two
// halves. It is a conversion carrier only; it has no arithmetic.
type I128 struct {
	hi, lo uint64
}

// U128 is an unsigned 128-bit integer stored as two halves. It is a
// conversion carrier only; it has no arithmetic.
type U128 struct {
	hi, lo uint64
}

// I128FromRaw builds an I128 from its two's complement halves.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

// I128From64 sign-extends v.
func I128From64(v int64) I128 {
	hi := uint64(0)
	if v < 0 {
		hi = ^uint64(0)
	}

	return I128{hi: hi, lo: uint64(v)} //nolint:gosec // G115: two's complement low half.
}

// U128FromRaw builds a U128 from its halves.
func U128FromRaw(hi, lo uint64) U128 {
	return U128{hi: hi, lo: lo}
}

// U128From64 zero-extends v.
func U128From64(v uint64) U128 {
	return U128{lo: v}
}

// Raw returns the two's complement halves.
func (i I128) Raw() (hi, lo uint64) {
	return i.hi, i.lo
}

// Raw returns the halves.
func (u U128) Raw() (hi, lo uint64) {
	return u.hi, u.lo
}

// IsZero reports whether i is zero.
func (i I128) IsZero() bool {
	return i.hi == 0 && i.lo == 0
}

// IsZero reports whether u is zero.
func (u U128) IsZero() bool {
	return u.hi == 0 && u.lo == 0
}

// String returns the decimal representation of i.
func (i I128) String() string {
	return ValueOf(i).String()
}

// String returns the decimal representation of u.
func (u U128) String() string {
	return ValueOf(u).String()
}
