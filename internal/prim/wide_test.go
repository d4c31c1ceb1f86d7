package prim

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"go.dw1.io/checked/kind"
)

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// wideSamples are the interesting magnitudes around word and type
// boundaries; they are used with both signs.
var wideSamples = func() []*big.Int {
	pow2 := func(n uint) *big.Int { return new(big.Int).Lsh(big.NewInt(1), n) }
	add := func(a *big.Int, d int64) *big.Int { return new(big.Int).Add(a, big.NewInt(d)) }

	out := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(7), big.NewInt(10)}
	for _, n := range []uint{63, 64, 100, 127, 128} {
		p := pow2(n)
		out = append(out, add(p, -1), p, add(p, 1))
	}
	out = append(out, new(big.Int).Mul(pow2(64), big.NewInt(12345)), add(pow2(96), 987654321))

	var all []*big.Int
	for _, v := range out {
		all = append(all, v, new(big.Int).Neg(v))
	}

	return all
}()

// values returns the samples representable in T.
func values[T kind.Wide]() []T {
	k := kind.Of[T]()

	var out []T
	for _, b := range wideSamples {
		if v, ok := kind.ValueFromBig(b); ok && k.Contains(v) {
			out = append(out, kind.Cast[T](v))
		}
	}

	return out
}

func bigOf[T kind.Wide](a T) *big.Int {
	return kind.ValueOf(a).Big()
}

// fits reports whether b is representable in T and returns it.
func fits[T kind.Wide](b *big.Int) (T, bool) {
	v, ok := kind.ValueFromBig(b)
	if !ok || !kind.Of[T]().Contains(v) {
		return *new(T), false
	}

	return kind.Cast[T](v), true
}

// wrap reduces b modulo 2^128 into the range of T.
func wrap[T kind.Wide](b *big.Int) T {
	m := new(big.Int).Mod(b, two128)
	if kind.Of[T]().Signed && m.Bit(127) == 1 {
		m.Sub(m, two128)
	}

	v, _ := kind.ValueFromBig(m)
	return kind.Cast[T](v)
}

func requireResult[T kind.Wide](t *testing.T, want *big.Int, got T, ok bool, format string, args ...any) {
	t.Helper()

	expected, fit := fits[T](want)
	require.Equal(t, fit, ok, append([]any{format}, args...)...)
	if ok {
		require.Equal(t, expected, got, append([]any{format}, args...)...)
	}
}

func checkWideBinary[T kind.Wide](t *testing.T) {
	for _, a := range values[T]() {
		for _, b := range values[T]() {
			x, y := bigOf(a), bigOf(b)

			got, ok := AddWide(a, b)
			requireResult(t, new(big.Int).Add(x, y), got, ok, "%s + %s", a, b)

			got, ok = SubWide(a, b)
			requireResult(t, new(big.Int).Sub(x, y), got, ok, "%s - %s", a, b)

			got, ok = MulWide(a, b)
			requireResult(t, new(big.Int).Mul(x, y), got, ok, "%s * %s", a, b)

			if y.Sign() == 0 {
				_, ok = DivWide(a, b)
				require.False(t, ok)
				_, ok = RemEuclidWide(a, b)
				require.False(t, ok)
				continue
			}

			got, ok = DivWide(a, b)
			requireResult(t, new(big.Int).Quo(x, y), got, ok, "%s / %s", a, b)

			got, ok = RemWide(a, b)
			if ok {
				require.Equal(t, wrap[T](new(big.Int).Rem(x, y)), got, "%s %% %s", a, b)
			}

			got, ok = DivEuclidWide(a, b)
			requireResult(t, new(big.Int).Div(x, y), got, ok, "div_euclid(%s, %s)", a, b)

			got, ok = RemEuclidWide(a, b)
			if ok {
				require.Equal(t, wrap[T](new(big.Int).Mod(x, y)), got, "rem_euclid(%s, %s)", a, b)
			}

			if x.Sign() > 0 && y.Cmp(big.NewInt(2)) >= 0 {
				n, ok := ILogWide(a, b)
				require.True(t, ok)

				var want uint32
				for r := new(big.Int).Set(x); r.Cmp(y) >= 0; r.Quo(r, y) {
					want++
				}
				require.Equal(t, want, n, "ilog(%s, %s)", a, b)
			} else {
				_, ok := ILogWide(a, b)
				require.False(t, ok, "ilog(%s, %s)", a, b)
			}
		}
	}
}

func TestWideArithmeticMatchesBig(t *testing.T) {
	t.Run("uint128", checkWideBinary[kind.U128])
	t.Run("int128", checkWideBinary[kind.I128])
}

func checkWideUnary[T kind.Wide](t *testing.T) {
	for _, a := range values[T]() {
		x := bigOf(a)

		for _, n := range []uint32{0, 1, 63, 64, 65, 127} {
			got, ok := ShlWide(a, n)
			require.True(t, ok)
			require.Equal(t, wrap[T](new(big.Int).Lsh(x, uint(n))), got, "%s << %d", a, n)

			got, ok = ShrWide(a, n)
			require.True(t, ok)
			require.Equal(t, wrap[T](new(big.Int).Rsh(x, uint(n))), got, "%s >> %d", a, n)
		}

		_, ok := ShlWide(a, 128)
		require.False(t, ok)
		_, ok = ShrWide(a, 128)
		require.False(t, ok)

		for _, e := range []uint32{0, 1, 2, 3, 64, 127, 128} {
			got, ok := PowWide(a, e)
			requireResult(t, new(big.Int).Exp(x, big.NewInt(int64(e)), nil), got, ok, "pow(%s, %d)", a, e)
		}

		if x.Sign() > 0 {
			n, ok := ILog2Wide(a)
			require.True(t, ok)
			require.Equal(t, uint32(x.BitLen()-1), n)

			n, ok = ILog10Wide(a)
			require.True(t, ok)
			require.Equal(t, uint32(len(x.String())-1), n)
		} else {
			_, ok := ILog2Wide(a)
			require.False(t, ok)
			_, ok = ILog10Wide(a)
			require.False(t, ok)
		}
	}
}

func TestWideUnaryMatchesBig(t *testing.T) {
	t.Run("uint128", checkWideUnary[kind.U128])
	t.Run("int128", checkWideUnary[kind.I128])
}

func TestWideSigned(t *testing.T) {
	minI := kind.I128FromRaw(1<<63, 0)

	_, ok := NegWide(minI)
	require.False(t, ok)
	_, ok = AbsWide(minI)
	require.False(t, ok)

	got, ok := NegWide(kind.I128From64(5))
	require.True(t, ok)
	require.Equal(t, kind.I128From64(-5), got)

	got, ok = AbsWide(kind.I128From64(-5))
	require.True(t, ok)
	require.Equal(t, kind.I128From64(5), got)

	// the product of the minimum and one is the minimum itself
	got, ok = MulWide(minI, kind.I128From64(1))
	require.True(t, ok)
	require.Equal(t, minI, got)

	_, ok = DivWide(minI, kind.I128From64(-1))
	require.False(t, ok)
}

func TestWideNextMultipleAndPower(t *testing.T) {
	maxU := kind.U128FromRaw(^uint64(0), ^uint64(0))

	got, ok := NextMultipleOfWide(kind.U128From64(10), kind.U128From64(4))
	require.True(t, ok)
	require.Equal(t, kind.U128From64(12), got)

	got, ok = NextMultipleOfWide(kind.U128FromRaw(1, 1), kind.U128FromRaw(1, 0))
	require.True(t, ok)
	require.Equal(t, kind.U128FromRaw(2, 0), got)

	_, ok = NextMultipleOfWide(maxU, kind.U128From64(2))
	require.False(t, ok)
	_, ok = NextMultipleOfWide(maxU, kind.U128{})
	require.False(t, ok)

	got, ok = NextPowerOfTwoWide(kind.U128{})
	require.True(t, ok)
	require.Equal(t, kind.U128From64(1), got)

	got, ok = NextPowerOfTwoWide(kind.U128FromRaw(0, 1<<63+1))
	require.True(t, ok)
	require.Equal(t, kind.U128FromRaw(1, 0), got)

	got, ok = NextPowerOfTwoWide(kind.U128FromRaw(1<<63, 0))
	require.True(t, ok)
	require.Equal(t, kind.U128FromRaw(1<<63, 0), got)

	_, ok = NextPowerOfTwoWide(kind.U128FromRaw(1<<63, 1))
	require.False(t, ok)
}
