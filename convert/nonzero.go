package convert

import (
	"go.dw1.io/checked"
	"go.dw1.io/checked/kind"
)

// NonZeroFrom converts a non-zero F to a non-zero T. It fails only when the
// value is out of range for T; a non-zero value never converts to zero.
func NonZeroFrom[T, F kind.Integer](v checked.NonZero[F]) (checked.NonZero[T], error) {
	t, err := Cfrom[T](v.Get())
	if err != nil {
		return checked.NonZero[T]{}, err
	}

	return checked.ToNonZero(t)
}

