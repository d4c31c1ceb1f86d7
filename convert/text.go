package convert

import (
	"unicode/utf16"
	"unicode/utf8"

	"go.dw1.io/checked"
)

// String returns b as a string, or an error matching [checked.ErrInvalidText]
// naming the first invalid UTF-8 sequence and its index.
func String(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r != utf8.RuneError || size > 1 {
			i += size
			continue
		}

		// the invalid sequence runs up to the next possible rune start
		j := i + 1
		for j < len(b) && j-i < utf8.UTFMax && !utf8.RuneStart(b[j]) {
			j++
		}

		return "", checked.Errorf(checked.ErrInvalidText,
			"invalid utf-8 sequence %q from index %d", b[i:j], i)
	}

	return string(b), nil
}

// StringFromUTF16 decodes u, or returns an error matching
// [checked.ErrInvalidText] naming the first unpaired surrogate and its index.
func StringFromUTF16(u []uint16) (string, error) {
	for i := 0; i < len(u); i++ {
		c := rune(u[i])
		if !utf16.IsSurrogate(c) {
			continue
		}

		if i+1 < len(u) && utf16.DecodeRune(c, rune(u[i+1])) != utf8.RuneError {
			i++
			continue
		}

		return "", checked.Errorf(checked.ErrInvalidText,
			"unpaired surrogate %#04x at index %d", u[i], i)
	}

	return string(utf16.Decode(u)), nil
}
