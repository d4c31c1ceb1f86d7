package convert

import (
	"go.dw1.io/checked"
	"go.dw1.io/checked/kind"
)

// Cfrom converts v to T, or returns an error matching [checked.ErrOutOfBounds]
// if v is not representable in T.
func Cfrom[T, F kind.Integer](v F) (T, error) {
	src, dst := kind.Of[F](), kind.Of[T]()

	w := kind.ValueOf(v)
	if kind.Check(src, dst, w) != kind.InRange {
		var zero T
		return zero, outOfBounds(w, src.Name, dst)
	}

	return kind.Cast[T](w), nil
}

// SaturatingFrom converts v to T, clamping it to the minimum or maximum of T
// when it is out of range.
func SaturatingFrom[T, F kind.Integer](v F) T {
	src, dst := kind.Of[F](), kind.Of[T]()

	w := kind.ValueOf(v)
	switch kind.Check(src, dst, w) {
	case kind.Below:
		w = dst.Min()
	case kind.Above:
		w = dst.Max()
	}

	return kind.Cast[T](w)
}

func outOfBounds(v any, src string, dst kind.Kind) error {
	return checked.Errorf(checked.ErrOutOfBounds,
		"cannot convert value %v from %s to %s: value is out of bounds", v, src, dst)
}
