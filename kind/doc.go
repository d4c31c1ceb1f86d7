// Package kind describes the fixed-width integer kinds known to the checked
// conversion engine and classifies every (source, target) pair of them.
//
// A [Kind] is signedness plus bit width. The pointer-width kinds ([Int],
// [Uint], [Uintptr]) are resolved for the build target; [PointerKind] builds
// them for any supported width so their relationships can be inspected on
// other targets too.
//
// [Classify] decides which range checks a conversion needs:
//
//	Unbounded     every source value fits
//	LowerBounded  only negative values fail
//	UpperBounded  only values above the target maximum fail
//	BothBounded   both checks are needed
//
// [Check] applies exactly those checks to a [Value], the sign-and-magnitude
// domain wide enough to hold the extremes of every kind, including the
// 128-bit carriers [I128] and [U128].
package kind
