package convert

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go.dw1.io/checked"
	"go.dw1.io/checked/kind"
)

func TestToIntegerInputs(t *testing.T) {
	t.Run("withinRange", func(t *testing.T) {
		got, err := To[int8](int64(math.MaxInt8))
		require.NoError(t, err)
		require.Equal(t, int8(math.MaxInt8), got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := To[int8](int64(math.MaxInt8) + 1)
		requireMessage(t, err,
			"cannot convert value 128 from int64 to int8: value is out of bounds",
			checked.ErrOutOfBounds)
	})

	t.Run("negativeToUnsigned", func(t *testing.T) {
		_, err := To[uint32](int32(-5))
		requireMessage(t, err,
			"cannot convert value -5 from int32 to uint32: value is out of bounds",
			checked.ErrOutOfBounds)
	})

	t.Run("wide", func(t *testing.T) {
		got, err := To[kind.U128](uintptr(42))
		require.NoError(t, err)
		require.Equal(t, kind.U128From64(42), got)

		_, err = To[uintptr](kind.I128From64(-1))
		require.ErrorIs(t, err, checked.ErrOutOfBounds)
	})
}

func TestToNonIntegerInputs(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		got, err := To[uint8](true)
		require.NoError(t, err)
		require.Equal(t, uint8(1), got)

		got, err = To[uint8](false)
		require.NoError(t, err)
		require.Zero(t, got)
	})

	t.Run("duration", func(t *testing.T) {
		got, err := To[int64](2 * time.Second)
		require.NoError(t, err)
		require.Equal(t, int64(2e9), got)

		_, err = To[int32](2 * time.Second)
		requireMessage(t, err,
			"cannot convert value 2s from time.Duration to int32: value is out of bounds",
			checked.ErrOutOfBounds)
	})

	t.Run("floatTruncates", func(t *testing.T) {
		got, err := To[int](1.9)
		require.NoError(t, err)
		require.Equal(t, 1, got)

		got, err = To[int](float32(-2.5))
		require.NoError(t, err)
		require.Equal(t, -2, got)
	})

	t.Run("floatOutOfRange", func(t *testing.T) {
		_, err := To[uint8](-1.5)
		requireMessage(t, err,
			"cannot convert value -1.5 from float64 to uint8: value is out of bounds",
			checked.ErrOutOfBounds)

		_, err = To[int64](1e19)
		require.ErrorIs(t, err, checked.ErrOutOfBounds)

		_, err = To[kind.U128](1e40)
		require.ErrorIs(t, err, checked.ErrOutOfBounds)
	})

	t.Run("floatNotFinite", func(t *testing.T) {
		_, err := To[int32](math.NaN())
		requireMessage(t, err,
			"cannot convert value NaN from float64 to int32: value is out of bounds",
			checked.ErrOutOfBounds)

		_, err = To[int32](math.Inf(1))
		require.ErrorIs(t, err, checked.ErrOutOfBounds)
	})

	t.Run("stringIsNotParsed", func(t *testing.T) {
		_, err := To[int]("42")
		require.ErrorIs(t, err, ErrUnsupported)
		require.EqualError(t, err, "unsupported conversion to int from string")
	})
}

func TestToString(t *testing.T) {
	s, err := To[string](int64(-42))
	require.NoError(t, err)
	require.Equal(t, "-42", s)

	s, err = To[string](kind.U128FromRaw(1, 0))
	require.NoError(t, err)
	require.Equal(t, "18446744073709551616", s)

	s, err = To[string](uintptr(5))
	require.NoError(t, err)
	require.Equal(t, "5", s)

	s, err = To[string]([]byte("héllo"))
	require.NoError(t, err)
	require.Equal(t, "héllo", s)

	_, err = To[string]([]byte{0xff})
	require.ErrorIs(t, err, checked.ErrInvalidText)

	s, err = To[string]([]uint16{'o', 'k'})
	require.NoError(t, err)
	require.Equal(t, "ok", s)

	_, err = To[string](1.5)
	require.True(t, errors.Is(err, ErrUnsupported))
}

func TestToMust(t *testing.T) {
	require.Equal(t, uint16(7), ToMust[uint16](int8(7)))
	require.Panics(t, func() {
		ToMust[uint16](int8(-7))
	})
}

func TestSaturate(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (int8, error)
		want int8
	}{
		{"integerAbove", func() (int8, error) { return Saturate[int8](1000) }, math.MaxInt8},
		{"integerBelow", func() (int8, error) { return Saturate[int8](int64(-1000)) }, math.MinInt8},
		{"integerInRange", func() (int8, error) { return Saturate[int8](uint16(12)) }, 12},
		{"bool", func() (int8, error) { return Saturate[int8](true) }, 1},
		{"duration", func() (int8, error) { return Saturate[int8](time.Hour) }, math.MaxInt8},
		{"float", func() (int8, error) { return Saturate[int8](-7.9) }, -7},
		{"floatBelow", func() (int8, error) { return Saturate[int8](-1e300) }, math.MinInt8},
		{"posInf", func() (int8, error) { return Saturate[int8](math.Inf(1)) }, math.MaxInt8},
		{"negInf", func() (int8, error) { return Saturate[int8](math.Inf(-1)) }, math.MinInt8},
		{"nan", func() (int8, error) { return Saturate[int8](math.NaN()) }, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	u, err := Saturate[kind.U128](math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, kind.U128FromRaw(math.MaxUint64, math.MaxUint64), u)

	_, err = Saturate[int8]("12")
	require.ErrorIs(t, err, ErrUnsupported)
}
