package kind

//go:generate go tool stringer -type=Bound,Range -output=bound_string.go

// Bound is the set of range checks a conversion between two kinds requires.
type Bound int

const (
	// Unbounded conversions always succeed.
	Unbounded Bound = iota
	// LowerBounded conversions fail only for negative values.
	LowerBounded
	// UpperBounded conversions fail only above the target maximum.
	UpperBounded
	// BothBounded conversions check both ends of the target range.
	BothBounded
)

// Range is the position of a value relative to a kind's representable range.
type Range int

const (
	InRange Range = iota
	Below
	Above
)

// Classify returns the bound relationship for converting values of src into
// dst. Exactly one relationship holds for every pair, and it depends only on
// signedness and width, so pointer-width kinds classify according to the
// width they resolve to.
func Classify(src, dst Kind) Bound {
	switch {
	case src.Signed == dst.Signed:
		if dst.Bits >= src.Bits {
			return Unbounded
		}
		if src.Signed {
			return BothBounded
		}

		return UpperBounded
	case !src.Signed:
		// unsigned to signed needs a spare bit for the sign.
		if dst.Bits > src.Bits {
			return Unbounded
		}

		return UpperBounded
	default:
		if dst.Bits >= src.Bits {
			return LowerBounded
		}

		return BothBounded
	}
}

// Check reports where v, a value of src, falls relative to dst. Only the
// checks demanded by [Classify] are performed.
func Check(src, dst Kind, v Value) Range {
	switch Classify(src, dst) {
	case LowerBounded:
		if v.Negative() {
			return Below
		}
	case UpperBounded:
		if v.Cmp(dst.Max()) > 0 {
			return Above
		}
	case BothBounded:
		if v.Cmp(dst.Min()) < 0 {
			return Below
		}
		if v.Cmp(dst.Max()) > 0 {
			return Above
		}
	}

	return InRange
}
