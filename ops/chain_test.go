package ops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.dw1.io/checked"
)

func kineticEnergy(mass, velocity uint32) (uint32, error) {
	return U(velocity).Pow(2).Mul(mass).Div(2).Value()
}

func TestUintChain(t *testing.T) {
	got, err := kineticEnergy(10, 100)
	require.NoError(t, err)
	require.Equal(t, uint32(50000), got)

	_, err = kineticEnergy(10, 100000)
	requireFailure(t, err, "overflow: pow(100000, 2)", checked.ErrOverflow)
}

func TestChainStopsAtFirstError(t *testing.T) {
	c := U(uint8(10)).Div(0).Add(1).NextPowerOfTwo()
	requireFailure(t, c.Err(), "division by zero: 10 / 0", checked.ErrDivisionByZero)

	v, err := c.Value()
	require.Error(t, err)
	require.Zero(t, v)

	_, err = c.ILog2()
	require.Same(t, c.Err(), err)
}

func TestIntChain(t *testing.T) {
	got, err := I(int16(-7)).Abs().Mul(3).Sub(30).Neg().Value()
	require.NoError(t, err)
	require.Equal(t, int16(9), got)

	n, err := I(int32(1)).Shl(20).ILog2()
	require.NoError(t, err)
	require.Equal(t, uint32(20), n)

	_, err = I(int8(-128)).Abs().Value()
	requireFailure(t, err, "overflow: abs(-128)", checked.ErrOverflow)

	r, err := I(int64(-7)).RemEuclid(3).Value()
	require.NoError(t, err)
	require.Equal(t, int64(2), r)
}

func TestUintChainMethods(t *testing.T) {
	got, err := U(uint64(17)).NextMultipleOf(8).Shr(1).Isqrt().Value()
	require.NoError(t, err)
	require.Equal(t, uint64(3), got)

	n, err := U(uint(12345)).ILog10()
	require.NoError(t, err)
	require.Equal(t, uint32(4), n)

	_, err = U(uint16(5)).Sub(6).ILog(2)
	requireFailure(t, err, "overflow: 5 - 6", checked.ErrOverflow)
}
