package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.dw1.io/checked"
)

func TestArray(t *testing.T) {
	a, err := Array[[3]int]([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, [3]int{1, 2, 3}, a)

	_, err = Array[[3]int]([]int{1, 2, 3, 4, 5})
	requireMessage(t, err, "expected slice of length 3, got length 5: [1 2 3 4 5]", checked.ErrInvalidLength)

	_, err = Array[[2]string]([]string{"x"})
	requireMessage(t, err, "expected slice of length 2, got length 1: [x]", checked.ErrInvalidLength)

	empty, err := Array[[0]byte]([]byte{})
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestArrayCopies(t *testing.T) {
	s := []byte{1, 2}
	a, err := Array[[2]byte](s)
	require.NoError(t, err)

	s[0] = 9
	require.Equal(t, byte(1), a[0])
}

func TestArrayPtrAliases(t *testing.T) {
	s := []byte{1, 2, 3, 4}
	p, err := ArrayPtr[[4]byte](s)
	require.NoError(t, err)

	p[0] = 9
	require.Equal(t, byte(9), s[0])

	_, err = ArrayPtr[[8]byte](s)
	requireMessage(t, err, "expected slice of length 8, got length 4: [9 2 3 4]", checked.ErrInvalidLength)
}

func TestArrayPtrNilSlice(t *testing.T) {
	p, err := ArrayPtr[[0]int]([]int(nil))
	require.NoError(t, err)
	require.NotNil(t, p)

	_, err = ArrayPtr[[2]int]([]int(nil))
	requireMessage(t, err, "expected slice of length 2, got length 0: []", checked.ErrInvalidLength)
}

func TestArrayPreviewElided(t *testing.T) {
	s := make([]int, 40)
	for i := range s {
		s[i] = i
	}

	_, err := Array[[3]int](s)
	requireMessage(t, err,
		"expected slice of length 3, got length 40: "+
			"[0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 ... "+
			"24 25 26 27 28 29 30 31 32 33 34 35 36 37 38 39]",
		checked.ErrInvalidLength)

	// exactly the limit is shown in full
	_, err = Array[[3]int](s[:32])
	var e *checked.Error
	require.ErrorAs(t, err, &e)
	require.NotContains(t, e.Message(), "...")
}

func TestArrayTypeMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		_, _ = Array[int]([]int{1})
	})
	require.Panics(t, func() {
		_, _ = Array[[1]int64]([]int{1})
	})
}
