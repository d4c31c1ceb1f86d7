package convert

// Cfromer is implemented by pointers to types that can be built from an F.
// Cfrom stores the converted value in the receiver, or returns an error and
// leaves the receiver unspecified.
type Cfromer[F any] interface {
	Cfrom(v F) error
}

// SaturatingFromer is implemented by pointers to types that can be built from
// any F by clamping it to their range.
type SaturatingFromer[F any] interface {
	SaturatingFrom(v F)
}

// Cinto converts v to T through T's [Cfromer] implementation. Types only
// implement the forward direction; the reverse one is derived here.
//
//	c, err := convert.Cinto[Celsius](kelvin)
func Cinto[T any, PT interface {
	*T
	Cfromer[F]
}, F any](v F) (T, error) {
	var out T
	if err := PT(&out).Cfrom(v); err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}

// SaturatingInto converts v to T through T's [SaturatingFromer]
// implementation.
func SaturatingInto[T any, PT interface {
	*T
	SaturatingFromer[F]
}, F any](v F) T {
	var out T
	PT(&out).SaturatingFrom(v)

	return out
}
