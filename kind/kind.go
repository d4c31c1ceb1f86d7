package kind

import (
	"fmt"
	"strconv"
	"unsafe"
)

// Kind is an integer representation: signedness and bit width.
type Kind struct {
	Name    string
	Signed  bool
	Bits    int
	Pointer bool
}

// Fixed-width kinds.
var (
	Int8    = Kind{Name: "int8", Signed: true, Bits: 8}
	Int16   = Kind{Name: "int16", Signed: true, Bits: 16}
	Int32   = Kind{Name: "int32", Signed: true, Bits: 32}
	Int64   = Kind{Name: "int64", Signed: true, Bits: 64}
	Int128  = Kind{Name: "int128", Signed: true, Bits: 128}
	Uint8   = Kind{Name: "uint8", Bits: 8}
	Uint16  = Kind{Name: "uint16", Bits: 16}
	Uint32  = Kind{Name: "uint32", Bits: 32}
	Uint64  = Kind{Name: "uint64", Bits: 64}
	Uint128 = Kind{Name: "uint128", Bits: 128}
)

// Pointer-width kinds of the build target.
var (
	Int     = PointerKind(true, strconv.IntSize)
	Uint    = PointerKind(false, strconv.IntSize)
	Uintptr = Kind{Name: "uintptr", Bits: int(unsafe.Sizeof(uintptr(0))) * 8, Pointer: true}
)

// PointerKind returns the pointer-width kind ("int" or "uint") for a target
// whose pointers are bits wide. Only 16, 32 and 64 are meaningful.
func PointerKind(signed bool, bits int) Kind {
	name := "uint"
	if signed {
		name = "int"
	}

	return Kind{Name: name, Signed: signed, Bits: bits, Pointer: true}
}

// String returns the kind's name.
func (k Kind) String() string {
	return k.Name
}

// Max returns the largest value representable in k.
func (k Kind) Max() Value {
	n := k.Bits
	if k.Signed {
		n--
	}

	return ones(n)
}

// Min returns the smallest value representable in k.
func (k Kind) Min() Value {
	if !k.Signed {
		return Value{}
	}

	n := k.Bits - 1
	if n >= 64 {
		return Value{neg: true, hi: uint64(1) << (n - 64)}
	}

	return Value{neg: true, lo: uint64(1) << n}
}

// Contains reports whether v is representable in k.
func (k Kind) Contains(v Value) bool {
	return v.Cmp(k.Min()) >= 0 && v.Cmp(k.Max()) <= 0
}

// Clamp returns v limited to the range of k.
func (k Kind) Clamp(v Value) Value {
	if lo := k.Min(); v.Cmp(lo) < 0 {
		return lo
	}
	if hi := k.Max(); v.Cmp(hi) > 0 {
		return hi
	}

	return v
}

// ones returns 2^n - 1 for 0 <= n <= 128.
func ones(n int) Value {
	if n >= 64 {
		return Value{hi: uint64(1)<<(n-64) - 1, lo: ^uint64(0)}
	}

	return Value{lo: uint64(1)<<n - 1}
}

// Of returns the kind of the type argument T.
func Of[T Integer]() Kind {
	var zero T

	switch any(zero).(type) {
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case I128:
		return Int128
	case uint:
		return Uint
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case U128:
		return Uint128
	case uintptr:
		return Uintptr
	}

	panic(fmt.Sprintf("kind: unsupported integer type %T", zero))
}
