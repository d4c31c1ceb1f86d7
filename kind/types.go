package kind

// Integer matches every type with a [Kind]. The set is closed: named types
// are not accepted, because their kind could not be told apart from the
// underlying type.
type Integer interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		I128 | U128
}

// Signed matches the native signed integers and types built on them, such as
// [time.Duration].
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches the native unsigned integers and types built on them.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Native matches every type with native integer arithmetic.
type Native interface {
	Signed | Unsigned
}

// ExactSigned matches the predeclared signed integers only.
type ExactSigned interface {
	Integer
	Signed
}

// ExactUnsigned matches the predeclared unsigned integers only.
type ExactUnsigned interface {
	Integer
	Unsigned
}

// Exact matches the predeclared integers only.
type Exact interface {
	Integer
	Native
}

// Wide matches the 128-bit carrier types.
type Wide interface {
	I128 | U128
	IsZero() bool
	String() string
}
