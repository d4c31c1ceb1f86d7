package convert

import (
	"fmt"
	"reflect"
	"strings"

	"go.dw1.io/checked"
)

// maxPreview is the number of slice elements an error message shows before
// eliding the middle.
const maxPreview = 32

// Array copies s into an array of type A, which must be an array type with
// element type E. It fails with an error matching [checked.ErrInvalidLength]
// unless len(s) equals the length of A.
//
//	a, err := convert.Array[[4]byte](b)
func Array[A, E any](s []E) (A, error) {
	var a A

	n := arrayLen[A, E]()
	if len(s) != n {
		return a, lengthMismatch(n, s)
	}

	reflect.Copy(reflect.ValueOf(&a).Elem(), reflect.ValueOf(s))

	return a, nil
}

// ArrayPtr is like [Array] but returns a pointer to the backing array of s
// instead of a copy. A nil s has no backing array; for a zero-length A it
// yields a pointer to a new empty array, never nil.
func ArrayPtr[A, E any](s []E) (*A, error) {
	n := arrayLen[A, E]()
	if len(s) != n {
		return nil, lengthMismatch(n, s)
	}
	if s == nil {
		return new(A), nil
	}

	p := reflect.ValueOf(s).Convert(reflect.TypeFor[*A]())

	return p.Interface().(*A), nil
}

func arrayLen[A, E any]() int {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array || t.Elem() != reflect.TypeFor[E]() {
		panic(fmt.Sprintf("convert: %s is not an array of %s", t, reflect.TypeFor[E]()))
	}

	return t.Len()
}

func lengthMismatch[E any](n int, s []E) error {
	return checked.Errorf(checked.ErrInvalidLength,
		"expected slice of length %d, got length %d: %s", n, len(s), preview(s))
}

// preview formats s like fmt does, keeping only the first and last
// maxPreview/2 elements of long slices.
func preview[E any](s []E) string {
	if len(s) <= maxPreview {
		return fmt.Sprint(s)
	}

	head := fmt.Sprint(s[:maxPreview/2])
	tail := fmt.Sprint(s[len(s)-maxPreview/2:])

	return strings.TrimSuffix(head, "]") + " ... " + strings.TrimPrefix(tail, "[")
}
