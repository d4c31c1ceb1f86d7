package convert

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/spf13/cast"

	"go.dw1.io/checked/kind"
)

// ErrUnsupported is returned by [To] and [Saturate] when no conversion exists
// from the dynamic type of the source to the target type.
var ErrUnsupported = errors.New("unsupported conversion")

// To converts v to type T.
//
// Integer sources go through [Cfrom]. Floats are truncated toward zero and
// must be finite and in range; bools convert to 0 or 1; time.Duration counts
// nanoseconds. A string target accepts []byte (which must be valid UTF-8),
// []uint16 (valid UTF-16) and integers (decimal form). Strings are never
// parsed as numbers.
func To[T Type](v any) (T, error) {
	var zero T

	switch any(zero).(type) {
	case int:
		return toInteger[T, int](v)
	case int8:
		return toInteger[T, int8](v)
	case int16:
		return toInteger[T, int16](v)
	case int32:
		return toInteger[T, int32](v)
	case int64:
		return toInteger[T, int64](v)
	case kind.I128:
		return toInteger[T, kind.I128](v)
	case uint:
		return toInteger[T, uint](v)
	case uint8:
		return toInteger[T, uint8](v)
	case uint16:
		return toInteger[T, uint16](v)
	case uint32:
		return toInteger[T, uint32](v)
	case uint64:
		return toInteger[T, uint64](v)
	case kind.U128:
		return toInteger[T, kind.U128](v)
	case uintptr:
		return toInteger[T, uintptr](v)
	case string:
		s, err := toString(v)
		if err != nil {
			return zero, err
		}

		return any(s).(T), nil
	default:
		return zero, unsupported(zero, v)
	}
}

// ToMust converts v to type T and panics on error.
func ToMust[T Type](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// Saturate converts v to the integer type T like [To], but clamps values
// outside the range of T instead of failing. NaN converts to zero. The error
// only reports an unsupported source type.
func Saturate[T kind.Integer](v any) (T, error) {
	switch s := v.(type) {
	case int:
		return SaturatingFrom[T](s), nil
	case int8:
		return SaturatingFrom[T](s), nil
	case int16:
		return SaturatingFrom[T](s), nil
	case int32:
		return SaturatingFrom[T](s), nil
	case int64:
		return SaturatingFrom[T](s), nil
	case kind.I128:
		return SaturatingFrom[T](s), nil
	case uint:
		return SaturatingFrom[T](s), nil
	case uint8:
		return SaturatingFrom[T](s), nil
	case uint16:
		return SaturatingFrom[T](s), nil
	case uint32:
		return SaturatingFrom[T](s), nil
	case uint64:
		return SaturatingFrom[T](s), nil
	case kind.U128:
		return SaturatingFrom[T](s), nil
	case uintptr:
		return SaturatingFrom[T](s), nil
	}

	var zero T
	w, _, err := widen(v, zero)
	if err != nil {
		return zero, err
	}

	return kind.Cast[T](kind.Of[T]().Clamp(w)), nil
}

// toInteger converts v to the integer type I and re-types the result as T
// (which is the caller's type parameter).
func toInteger[T any, I kind.Integer](v any) (T, error) {
	converted, err := integer[I](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

func integer[I kind.Integer](v any) (I, error) {
	switch s := v.(type) {
	case int:
		return Cfrom[I](s)
	case int8:
		return Cfrom[I](s)
	case int16:
		return Cfrom[I](s)
	case int32:
		return Cfrom[I](s)
	case int64:
		return Cfrom[I](s)
	case kind.I128:
		return Cfrom[I](s)
	case uint:
		return Cfrom[I](s)
	case uint8:
		return Cfrom[I](s)
	case uint16:
		return Cfrom[I](s)
	case uint32:
		return Cfrom[I](s)
	case uint64:
		return Cfrom[I](s)
	case kind.U128:
		return Cfrom[I](s)
	case uintptr:
		return Cfrom[I](s)
	}

	var zero I
	w, exact, err := widen(v, zero)
	if err != nil {
		return zero, err
	}

	dst := kind.Of[I]()
	if !exact || !dst.Contains(w) {
		return zero, outOfBounds(v, fmt.Sprintf("%T", v), dst)
	}

	return kind.Cast[I](w), nil
}

// widen returns a non-integer source as a Value. exact is false when the
// source has no integer value at all (NaN) or one beyond 128 bits; w then
// holds the value it saturates to.
func widen(v, to any) (w kind.Value, exact bool, err error) {
	switch s := v.(type) {
	case bool:
		n, err := cast.ToUint8E(s)
		return kind.ValueOf(n), true, err
	case time.Duration:
		return kind.ValueOf(int64(s)), true, nil
	case float32, float64:
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return kind.Value{}, false, err
		}

		w, exact := floatValue(f)
		return w, exact, nil
	default:
		return kind.Value{}, false, unsupported(to, v)
	}
}

// floatValue truncates f toward zero.
func floatValue(f float64) (kind.Value, bool) {
	if math.IsNaN(f) {
		return kind.Value{}, false
	}

	if !math.IsInf(f, 0) {
		i, _ := big.NewFloat(f).Int(nil)
		if w, ok := kind.ValueFromBig(i); ok {
			return w, true
		}
	}

	if f < 0 {
		return kind.Int128.Min(), false
	}

	return kind.Uint128.Max(), false
}

func toString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return String(s)
	case []uint16:
		return StringFromUTF16(s)
	case int, int8, int16, int32, int64, kind.I128,
		uint, uint8, uint16, uint32, uint64, kind.U128:
		return cast.ToStringE(s)
	case uintptr:
		return cast.ToStringE(uint64(s))
	default:
		return "", unsupported("", v)
	}
}

func unsupported(to, from any) error {
	return fmt.Errorf("%w to %T from %T", ErrUnsupported, to, from)
}
