// Package convert provides checked and saturating conversions between integer
// kinds, plus a few structural conversions that can fail in the same way.
//
// [Cfrom] fails when the value does not fit the target kind:
//
//	v, err := convert.Cfrom[uint32](int32(-5))
//	// err: cannot convert value -5 from int32 to uint32: value is out of bounds
//
// [SaturatingFrom] never fails and clamps to the nearest bound instead. Both
// consult [kind.Check], so a conversion saturates exactly when the checked
// variant would have failed.
//
// User types join in by implementing [Cfromer] or [SaturatingFromer] on their
// pointer type; [Cinto] and [SaturatingInto] derive the other direction.
//
// [To] spells the target type at the call site and accepts any supported
// source at run time, in the manner of [github.com/spf13/cast].
package convert
